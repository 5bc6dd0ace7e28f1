// Package wizard models the approval flow a customer walks through before an
// order exists.
//
// The flow is linear:
//
//	PlanSelection -> Configuring -> ContactInfo -> Summary -> Confirmed
//
// A Draft is the whole state of one customer's flow. It is a plain value that
// can be stored and restored between requests. Apply is the only way to change
// it: Apply(draft, action) returns the next draft or an error and never
// modifies its input.
//
// Forward moves are guarded. Configuring -> ContactInfo needs every figure of
// the plan complete and ContactInfo -> Summary needs valid contact data.
// Backward moves never touch selections or contact data. ChangePlan returns to
// PlanSelection from any step and discards everything. While a submission is
// in flight the draft refuses navigation and a second submission.
package wizard
