// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"
)

// Maturity is a staking maturity window counted in epochs.
// The wall-clock length of one epoch is a deployment setting
// (APP_EPOCH_DURATION).
type Maturity uint64

// DefaultLockMaturity is the maturity applied on stake when the asset was
// minted without an explicit one.
const DefaultLockMaturity Maturity = 5

// NewMaturity returns a pointer to a copy of m.
func NewMaturity(m Maturity) *Maturity {
	return &m
}

// Duration converts the maturity into wall-clock time using the given epoch
// length.
func (m Maturity) Duration(epoch time.Duration) time.Duration {
	return time.Duration(m) * epoch
}

// Clone returns a pointer to a copy of m, or nil when m is nil.
func (m *Maturity) Clone() *Maturity {
	if m == nil {
		return nil
	}
	return NewMaturity(*m)
}

// LockStatus is the state of the staking state machine.
type LockStatus string

const (
	// LockUnlocked means the asset is transferable.
	LockUnlocked LockStatus = "unlocked"
	// LockStaked means the asset is staked and cannot be transferred.
	LockStaked LockStatus = "staked"
)

// LockState is either Unlocked or Staked(since, maturity).
// Since and Maturity are set only while staked.
type LockState struct {
	Status   LockStatus `json:"status"`
	Since    *time.Time `json:"since,omitempty"`
	Maturity *Maturity  `json:"maturity,omitempty"`
}

// Unlocked returns the Unlocked lock state.
func Unlocked() LockState {
	return LockState{Status: LockUnlocked}
}

// Staked returns a Staked lock state that began at since.
func Staked(since time.Time, maturity Maturity) LockState {
	return LockState{
		Status:   LockStaked,
		Since:    &since,
		Maturity: NewMaturity(maturity),
	}
}

// IsStaked reports whether the asset is currently staked.
func (l LockState) IsStaked() bool {
	return l.Status == LockStaked
}

// MaturesAt reports when a staked asset reaches maturity. The second return
// value is false for unlocked assets.
func (l LockState) MaturesAt(epoch time.Duration) (time.Time, bool) {
	if !l.IsStaked() || l.Since == nil {
		return time.Time{}, false
	}
	if l.Maturity == nil {
		return *l.Since, true
	}
	return l.Since.Add(l.Maturity.Duration(epoch)), true
}

// Valid reports whether l is one of the two well-formed states.
func (l LockState) Valid() bool {
	switch l.Status {
	case LockUnlocked:
		return l.Since == nil && l.Maturity == nil
	case LockStaked:
		return l.Since != nil
	default:
		return false
	}
}

// Clone returns a deep copy of l.
func (l LockState) Clone() LockState {
	clone := LockState{Status: l.Status, Maturity: l.Maturity.Clone()}
	if l.Since != nil {
		since := *l.Since
		clone.Since = &since
	}
	return clone
}
