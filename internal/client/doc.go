// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the shielded NFT
// registry.
//
// Each subcommand maps to one call of an [adapter.RegistryAdapter]; results
// are printed as indented JSON so they can be piped into other tools.
package client
