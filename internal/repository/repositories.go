package repository

import (
	"github.com/deppfellow/go-blog/internal/server"
)

// Repositories groups every repository so services receive one dependency.
type Repositories struct {
	Users     *UserRepository
	UserCache *UserCache
}

func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(s.DB.Pool),
		UserCache: NewUserCache(s.Redis, DefaultUserCacheTTL),
	}
}
