package rpc

import (
	"context"
	"errors"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/didi-digest/backend/internal/digests"
	"github.com/didi-digest/backend/internal/rest"
)

//go:generate zenrpc

// DigestService provides RPC methods for the digest read surface. The caller
// identity comes from the request context installed by the auth middleware.
type DigestService struct {
	zenrpc.Service
	manager *digests.Manager
}

func NewDigestService(manager *digests.Manager) *DigestService {
	return &DigestService{manager: manager}
}

func caller(ctx context.Context) (digests.Identity, error) {
	ident, ok := rest.IdentityFromContext(ctx)
	if !ok {
		return digests.Identity{}, zenrpc.NewStringError(401, "authentication required")
	}
	return ident, nil
}

// List retrieves digests sorted by date DESC with news sorted by position ASC,
// annotated with favorite and unread for the caller.
//
//zenrpc:filter optional digest filters
//zenrpc:return list of digests
//zenrpc:401 authentication required
//zenrpc:500 internal server error
func (s *DigestService) List(ctx context.Context, filter DigestFilter) ([]Digest, error) {
	ident, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.manager.DigestsByFilter(ctx, ident, digests.Filter{
		Important: filter.Important,
		Favorite:  filter.Favorite,
		Unread:    filter.Unread,
		Search:    filter.Search,
		Year:      filter.Year,
		Month:     filter.Month,
		Day:       filter.Day,
		Page:      filter.Page,
		PageSize:  filter.PageSize,
	})
	if err != nil {
		return nil, err
	}

	return NewDigests(list), nil
}

// ByID retrieves a single digest with resolved payloads and marks it read for
// the caller.
//
//zenrpc:id digest numeric ID
//zenrpc:return digest with full news payloads
//zenrpc:400 id must be positive
//zenrpc:401 authentication required
//zenrpc:404 digest not found
//zenrpc:500 internal server error
func (s *DigestService) ByID(ctx context.Context, req DigestByIDRequest) (*Digest, error) {
	if req.ID <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	ident, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	digest, err := s.manager.DigestByID(ctx, ident, req.ID)
	if errors.Is(err, digests.ErrNotFound) {
		return nil, zenrpc.NewStringError(404, "digest not found")
	}
	if err != nil {
		return nil, err
	}

	result := NewDigest(*digest)
	return &result, nil
}

// UnreadCount returns the number of published digests the caller has not read.
//
//zenrpc:return unread digest count
//zenrpc:401 authentication required
//zenrpc:500 internal server error
func (s *DigestService) UnreadCount(ctx context.Context) (*UnreadCount, error) {
	ident, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	count, err := s.manager.UnreadCount(ctx, ident)
	if err != nil {
		return nil, err
	}

	return &UnreadCount{Count: count}, nil
}

// DateArchive returns years mapped to the ascending distinct months that have
// digests.
//
//zenrpc:return map of year to months
//zenrpc:401 authentication required
//zenrpc:500 internal server error
func (s *DigestService) DateArchive(ctx context.Context) (map[int][]int, error) {
	if _, err := caller(ctx); err != nil {
		return nil, err
	}

	index, err := s.manager.ArchiveDates(ctx)
	if err != nil {
		return nil, err
	}

	return index, nil
}
