// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the address-book client runtime.
//
// It wires the RPC channel, the in-memory replica, the optimistic mutation
// coordinator and the push-notification stream into a single process
// lifecycle with an explicit Init/Teardown contract.
package client
