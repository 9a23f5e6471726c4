// ABOUTME: Wire types for op arguments and results, easyjson-generated codecs
// ABOUTME: Promoted to named structs for easyjson codegen (zero-reflection decoding)

//go:generate easyjson -all types.go

package dispatch

// SetRawArgs are the arguments for the set_raw op.
type SetRawArgs struct {
	Rid  uint32 `json:"rid"`
	Mode bool   `json:"mode"`
}

// RidArgs are the arguments for ops that take only a resource id.
type RidArgs struct {
	Rid uint32 `json:"rid"`
}

// AckResult is the empty success acknowledgment.
type AckResult struct{}

// IsattyResult carries the interactivity answer.
type IsattyResult struct {
	Isatty bool `json:"isatty"`
}

// ConsoleSizeResult carries the terminal geometry answer.
type ConsoleSizeResult struct {
	Columns uint32 `json:"columns"`
	Rows    uint32 `json:"rows"`
}
