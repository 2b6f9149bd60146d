// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the remote address-book store.
//
// The primary abstraction is [Channel], which decouples the mutation and
// reconciliation layers from the underlying protocol. The package ships an
// HTTP/REST implementation ([NewHTTPChannel]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/dkotenko/abook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/channel_mock.go -package=mock

// Channel defines transport-agnostic request/response communication with
// the remote store. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
//
// The channel is the only component that produces remote rejections; the
// mutation coordinator translates them into rollback plus a user
// notification, and no other layer handles transport failures.
type Channel interface {
	// SetToken stores the bearer session token that will be attached to all
	// subsequent authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the channel, or an
	// empty string if no token has been set yet.
	Token() string

	// Search runs a paged, folder-scoped contact listing query.
	Search(ctx context.Context, req models.SearchRequest) (models.SearchResponse, error)

	// GetContacts fetches full contact records for the given ids. Ids the
	// server no longer knows are simply absent from the result, not an
	// error.
	GetContacts(ctx context.Context, ids []string) ([]models.WireContact, error)

	// CreateContact asks the server to create the contact and returns the
	// confirmed record carrying the server-issued id.
	CreateContact(ctx context.Context, c models.WireContact) (models.WireContact, error)

	// ContactAction applies one operation (move, delete, tag, untag) to a
	// batch of contacts in a single request.
	ContactAction(ctx context.Context, req models.ContactActionRequest) error

	// CreateFolder asks the server to create a folder and returns the
	// confirmed record carrying the server-issued id.
	CreateFolder(ctx context.Context, req models.CreateFolderRequest) (models.WireFolder, error)

	// FolderAction applies one operation (move, rename, delete, empty,
	// grant, !grant) to a folder.
	FolderAction(ctx context.Context, req models.FolderActionRequest) error

	// GetFolderTree fetches the complete folder tree rooted at the account
	// root. Used for the initial load and after a stream reconnect; the
	// result feeds the same code path as a pushed full refresh.
	GetFolderTree(ctx context.Context) (models.WireFolder, error)

	// GetDistributionListMembers pages through the members of a
	// distribution list. The bool result reports whether more pages remain.
	GetDistributionListMembers(ctx context.Context, id string, limit, offset int) ([]models.WireContact, bool, error)

	// AutoComplete resolves a typed prefix into ranked contact matches.
	// The response is an XML attribute bag; the implementation parses it
	// into a flat match list with IsGroup derived from the "1"/absent
	// string attribute.
	AutoComplete(ctx context.Context, query string) ([]models.AutoCompleteMatch, error)
}
