// Package customer holds the contact details collected before an order is confirmed.
//
// Form is the raw, possibly invalid, input kept on a draft while the customer
// edits it. Info is the validated snapshot an order carries. Validation reports
// every failing field at once through *ValidationError so each field can be
// corrected independently.
package customer
