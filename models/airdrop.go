// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AirdropOutcome is the result of minting one clone for one recipient.
// Exactly one of ID and Error is set.
type AirdropOutcome struct {
	Recipient string  `json:"recipient"`
	ID        AssetID `json:"id,omitempty"`
	Error     string  `json:"error,omitempty"`

	// Err keeps the original error for callers inside the process.
	Err error `json:"-"`
}

// OK reports whether the recipient received a new asset.
func (o AirdropOutcome) OK() bool {
	return o.Err == nil && o.Error == ""
}

// AirdropResult enumerates the outcome of every recipient in request order.
type AirdropResult struct {
	SourceID AssetID          `json:"source_id"`
	Outcomes []AirdropOutcome `json:"outcomes"`
}

// Succeeded returns the outcomes that produced a new asset.
func (r AirdropResult) Succeeded() []AirdropOutcome {
	out := make([]AirdropOutcome, 0, len(r.Outcomes))
	for _, o := range r.Outcomes {
		if o.OK() {
			out = append(out, o)
		}
	}
	return out
}

// Failed returns the outcomes that did not produce a new asset.
func (r AirdropResult) Failed() []AirdropOutcome {
	out := make([]AirdropOutcome, 0)
	for _, o := range r.Outcomes {
		if !o.OK() {
			out = append(out, o)
		}
	}
	return out
}
