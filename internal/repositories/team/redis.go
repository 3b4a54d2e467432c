package team

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/scoxgen/scox/internal/errors"
	"github.com/scoxgen/scox/internal/pkg/clock"
	"github.com/scoxgen/scox/internal/pkg/idgen"
	redisclient "github.com/scoxgen/scox/internal/redis"
)

const (
	// Key pattern: roster:{name}; the index set holds every roster name
	rosterKeyPrefix = "roster:"
	rosterIndexKey  = "rosters"

	errNameEmpty = "roster name cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client      redisclient.Client
	Clock       clock.Clock
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	idGen  idgen.Generator
}

// NewRedisRepository creates a new Redis repository for rosters
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		idGen:  cfg.IDGenerator,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Save stores a roster under its name, overwriting any previous run saved
// under the same name
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}
	if len(input.Teams) == 0 {
		return nil, errors.InvalidArgument("roster must contain at least one team")
	}

	stored := &StoredTeam{
		ID:        r.idGen.Generate(),
		Name:      input.Name,
		Teams:     input.Teams,
		CreatedAt: r.clock.Now().UTC(),
	}

	payload, err := json.Marshal(stored)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal roster")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.buildKey(input.Name), payload, 0)
	pipe.SAdd(ctx, rosterIndexKey, input.Name)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to store roster in Redis")
	}

	return &SaveOutput{Stored: stored}, nil
}

// Get retrieves a roster by name
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	payload, err := r.client.Get(ctx, r.buildKey(input.Name)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("roster %q not found", input.Name).
				WithMeta("roster_name", input.Name)
		}
		return nil, errors.Wrap(err, "failed to get roster from Redis")
	}

	var stored StoredTeam
	if err := json.Unmarshal([]byte(payload), &stored); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal roster")
	}

	return &GetOutput{Stored: &stored}, nil
}

// List returns every stored roster, sorted by name
func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	names, err := r.client.SMembers(ctx, rosterIndexKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rosters from Redis")
	}
	sort.Strings(names)

	out := &ListOutput{Stored: make([]*StoredTeam, 0, len(names))}
	for _, name := range names {
		got, err := r.Get(ctx, GetInput{Name: name})
		if err != nil {
			// An index entry without a record means a half-finished
			// delete; skip it rather than failing the listing.
			if errors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		out.Stored = append(out.Stored, got.Stored)
	}

	return out, nil
}

// Delete removes a roster and its index entry
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	deleted, err := r.client.Del(ctx, r.buildKey(input.Name)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete roster from Redis")
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("roster %q not found", input.Name).
			WithMeta("roster_name", input.Name)
	}

	if err := r.client.SRem(ctx, rosterIndexKey, input.Name).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to remove roster from index")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) buildKey(name string) string {
	return rosterKeyPrefix + name
}
