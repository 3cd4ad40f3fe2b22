package service

import (
	"github.com/deppfellow/go-blog/internal/lib/job"
	"github.com/deppfellow/go-blog/internal/repository"
	"github.com/deppfellow/go-blog/internal/server"
)

type Services struct {
	Users *UserService
	Job   *job.JobService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	var enqueuer TaskEnqueuer
	if s.Job != nil {
		enqueuer = s.Job.Client
	}

	return &Services{
		Users: NewUserService(repos.Users, repos.UserCache, enqueuer),
		Job:   s.Job,
	}, nil
}
