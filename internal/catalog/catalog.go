// Package catalog ties the api client, blob cache and sqlite store
// together: load the catalog from disk (fetching whatever is missing) and
// refresh it from upstream.
package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tfdsearch/internal/api"
	"tfdsearch/internal/cache"
	"tfdsearch/internal/logging"
	"tfdsearch/internal/meta"
	"tfdsearch/internal/store"
)

// Fetcher is the slice of api.Client the service needs.
type Fetcher interface {
	Fetch(ctx context.Context, res api.Resource, etag string) (*api.Document, error)
	URL(res api.Resource) string
}

// Service loads and refreshes the metadata catalog.
type Service struct {
	client Fetcher
	cache  *cache.Cache
	store  *store.Store
	log    *zap.Logger
}

// New assembles a Service.
func New(client Fetcher, c *cache.Cache, s *store.Store) *Service {
	return &Service{
		client: client,
		cache:  c,
		store:  s,
		log:    logging.Named("catalog"),
	}
}

// Load returns the catalog, reading cached documents and fetching any that
// are missing. First run on a clean machine downloads all three.
func (s *Service) Load(ctx context.Context) (*meta.Catalog, error) {
	bodies := make(map[api.Resource][]byte, len(api.Resources))

	for _, res := range api.Resources {
		data, err := s.cache.Read(res)
		if errors.Is(err, cache.ErrCacheMiss) {
			s.log.Info("cache miss, fetching", zap.String("resource", string(res)))
			data, err = s.fetchAndPersist(ctx, res, "")
		}
		if err != nil {
			return nil, err
		}
		bodies[res] = data
	}

	return decodeCatalog(bodies)
}

// Refresh re-downloads all resources concurrently, honoring stored ETags.
// A 304 keeps the cached blob and only bumps fetched_at. The progress
// callback (may be nil) runs as each resource completes.
func (s *Service) Refresh(ctx context.Context, progress func(res api.Resource)) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, res := range api.Resources {
		g.Go(func() error {
			if err := s.refreshOne(ctx, res); err != nil {
				return err
			}
			if progress != nil {
				progress(res)
			}
			return nil
		})
	}
	return g.Wait()
}

func (s *Service) refreshOne(ctx context.Context, res api.Resource) error {
	etag := ""
	if m, err := s.store.Manifest(res); err == nil && m != nil && s.cache.Exists(res) {
		etag = m.ETag
	}

	_, err := s.fetchAndPersist(ctx, res, etag)
	if errors.Is(err, api.ErrNotModified) {
		m, merr := s.store.Manifest(res)
		if merr != nil || m == nil {
			return nil
		}
		m.FetchedAt = time.Now().UTC()
		return s.store.UpsertManifest(*m)
	}
	return err
}

// fetchAndPersist downloads one resource, writes the blob and records the
// manifest. Returns the raw body.
func (s *Service) fetchAndPersist(ctx context.Context, res api.Resource, etag string) ([]byte, error) {
	doc, err := s.client.Fetch(ctx, res, etag)
	if err != nil {
		return nil, err
	}

	// Validate before caching so a malformed upstream document never
	// replaces a good cached one.
	count, err := entryCount(doc.Body)
	if err != nil {
		return nil, fmt.Errorf("malformed %s document: %w", res, err)
	}

	if err := s.cache.Write(res, doc.Body); err != nil {
		return nil, err
	}

	sum := sha256.Sum256(doc.Body)
	m := store.Manifest{
		Resource:   res,
		URL:        s.client.URL(res),
		ETag:       doc.ETag,
		SHA256:     hex.EncodeToString(sum[:]),
		EntryCount: count,
		FetchedAt:  time.Now().UTC(),
	}
	if err := s.store.UpsertManifest(m); err != nil {
		return nil, err
	}

	s.log.Info("refreshed resource",
		zap.String("resource", string(res)),
		zap.Int("entries", count),
	)
	return doc.Body, nil
}

// entryCount verifies the document is a JSON array and returns its length.
func entryCount(body []byte) (int, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(body, &entries); err != nil {
		return 0, err
	}
	return len(entries), nil
}

func decodeCatalog(bodies map[api.Resource][]byte) (*meta.Catalog, error) {
	var weapons []meta.Weapon
	if err := json.Unmarshal(bodies[api.ResourceWeapon], &weapons); err != nil {
		return nil, fmt.Errorf("decode weapon.json: %w", err)
	}
	var modules []meta.Module
	if err := json.Unmarshal(bodies[api.ResourceModule], &modules); err != nil {
		return nil, fmt.Errorf("decode module.json: %w", err)
	}
	var stats []meta.Stat
	if err := json.Unmarshal(bodies[api.ResourceStat], &stats); err != nil {
		return nil, fmt.Errorf("decode stat.json: %w", err)
	}
	return meta.NewCatalog(weapons, modules, stats), nil
}
