package users

import (
	"context"
	"sync"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/hashicorp/golang-lru/simplelru"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
)

type DirectoryConfig struct {
	CacheSize       int           `envconfig:"CLINIC_DIRECTORY_CACHE_SIZE" default:"1000"`
	CacheExpiration time.Duration `envconfig:"CLINIC_DIRECTORY_CACHE_EXPIRATION" default:"5m"`
}

func NewDirectoryConfig() (DirectoryConfig, error) {
	cfg := DirectoryConfig{}
	err := envconfig.Process("", &cfg)
	return cfg, err
}

type cacheEntry struct {
	doctor Doctor
	expiry time.Time
}

func (c cacheEntry) IsExpired(now time.Time) bool {
	return now.After(c.expiry)
}

// CachingDirectory resolves user references with a single repository query for all
// references which are not present in the cache
type CachingDirectory struct {
	repository Repository
	logger     *zap.SugaredLogger
	expiration time.Duration
	lru        *simplelru.LRU
	mu         *sync.Mutex
	now        func() time.Time
}

var _ Directory = &CachingDirectory{}

func NewDirectory(repository Repository, cfg DirectoryConfig, logger *zap.SugaredLogger) (Directory, error) {
	return NewCachingDirectory(repository, cfg, logger)
}

func NewCachingDirectory(repository Repository, cfg DirectoryConfig, logger *zap.SugaredLogger) (*CachingDirectory, error) {
	lru, err := simplelru.NewLRU(cfg.CacheSize, nil)
	if err != nil {
		return nil, err
	}

	return &CachingDirectory{
		repository: repository,
		logger:     logger,
		expiration: cfg.CacheExpiration,
		lru:        lru,
		mu:         &sync.Mutex{},
		now:        time.Now,
	}, nil
}

func (c *CachingDirectory) Resolve(ctx context.Context, userIds []string) (Doctors, error) {
	result := make(Doctors)
	missing := mapset.NewThreadUnsafeSet[string]()
	for _, id := range userIds {
		if id == "" {
			continue
		}
		if doctor, ok := c.getCached(id); ok {
			result[id] = doctor
		} else {
			missing.Add(id)
		}
	}

	if missing.Cardinality() == 0 {
		return result, nil
	}

	list, err := c.repository.ListByIds(ctx, missing.ToSlice())
	if err != nil {
		return nil, err
	}
	for _, user := range list {
		doctor := Doctor{
			Name:           user.Name,
			Specialization: user.Specialization,
		}
		result[user.UserId] = doctor
		c.setCached(user.UserId, doctor)
		missing.Remove(user.UserId)
	}

	if missing.Cardinality() > 0 {
		c.logger.Debugw("unable to resolve user references", "userIds", missing.ToSlice())
	}

	return result, nil
}

func (c *CachingDirectory) getCached(userId string) (Doctor, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.lru.Get(userId); ok {
		entry := e.(cacheEntry)
		if entry.IsExpired(c.now()) {
			c.lru.Remove(userId)
			return Doctor{}, false
		}
		return entry.doctor, true
	}
	return Doctor{}, false
}

func (c *CachingDirectory) setCached(userId string, doctor Doctor) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.lru.Add(userId, cacheEntry{
		doctor: doctor,
		expiry: c.now().Add(c.expiration),
	})
}
