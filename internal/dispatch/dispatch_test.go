// ABOUTME: Tests for op routing, argument decoding, and error propagation
// ABOUTME: Uses generic resources and a closed gate so no terminal is required

package dispatch

import (
	"errors"
	"testing"

	"github.com/mauromedda/termctl-go/internal/console"
	"github.com/mauromedda/termctl-go/internal/feature"
	"github.com/mauromedda/termctl-go/internal/ops/tty"
	"github.com/mauromedda/termctl-go/internal/registry"
)

func newTestDispatcher(open bool) (*Dispatcher, uint32) {
	table := registry.NewTable()
	rid := table.AddGeneric()
	gate := feature.NewGate()
	if open {
		gate.Enable()
	}
	return New(tty.New(table, console.System{}, gate)), rid
}

func TestDispatch_UnknownOp(t *testing.T) {
	t.Parallel()

	d, _ := newTestDispatcher(true)
	if _, err := d.Dispatch("open_pod_bay_doors", []byte(`{}`)); !errors.Is(err, ErrUnknownOp) {
		t.Errorf("Dispatch error = %v, want ErrUnknownOp", err)
	}
}

func TestDispatch_MalformedArgs(t *testing.T) {
	t.Parallel()

	d, _ := newTestDispatcher(true)
	for _, op := range []string{"set_raw", "isatty", "console_size"} {
		if _, err := d.Dispatch(op, []byte(`{"rid":`)); err == nil {
			t.Errorf("%s accepted malformed args", op)
		}
	}
}

func TestDispatch_IsattyGenericResource(t *testing.T) {
	t.Parallel()

	d, rid := newTestDispatcher(false)
	args, err := RidArgs{Rid: rid}.MarshalJSON()
	if err != nil {
		t.Fatalf("encoding args: %v", err)
	}

	out, err := d.Dispatch("isatty", args)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if string(out) != `{"isatty":false}` {
		t.Errorf("result = %s, want {\"isatty\":false}", out)
	}
}

func TestDispatch_SetRawGateClosed(t *testing.T) {
	t.Parallel()

	d, rid := newTestDispatcher(false)
	args, err := SetRawArgs{Rid: rid, Mode: true}.MarshalJSON()
	if err != nil {
		t.Fatalf("encoding args: %v", err)
	}

	if _, err := d.Dispatch("set_raw", args); !errors.Is(err, feature.ErrDisabled) {
		t.Errorf("Dispatch error = %v, want ErrDisabled", err)
	}
}

func TestDispatch_ErrorsSurfaceVerbatim(t *testing.T) {
	t.Parallel()

	d, rid := newTestDispatcher(true)
	setRawArgs, err := SetRawArgs{Rid: rid, Mode: true}.MarshalJSON()
	if err != nil {
		t.Fatalf("encoding args: %v", err)
	}
	ridArgs, err := RidArgs{Rid: rid}.MarshalJSON()
	if err != nil {
		t.Fatalf("encoding args: %v", err)
	}

	if _, err := d.Dispatch("set_raw", setRawArgs); !errors.Is(err, tty.ErrNotSupported) {
		t.Errorf("set_raw error = %v, want ErrNotSupported", err)
	}
	if _, err := d.Dispatch("console_size", ridArgs); !errors.Is(err, tty.ErrBadResource) {
		t.Errorf("console_size error = %v, want ErrBadResource", err)
	}
}

func TestTypes_RoundTrip(t *testing.T) {
	t.Parallel()

	in := SetRawArgs{Rid: 7, Mode: true}
	data, err := in.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(data) != `{"rid":7,"mode":true}` {
		t.Errorf("encoded = %s", data)
	}

	var out SetRawArgs
	if err := out.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}

	size := ConsoleSizeResult{Columns: 120, Rows: 40}
	data, err = size.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(data) != `{"columns":120,"rows":40}` {
		t.Errorf("encoded = %s", data)
	}

	ack, err := AckResult{}.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(ack) != `{}` {
		t.Errorf("ack = %s, want {}", ack)
	}
}
