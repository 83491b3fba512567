package usecase

import (
	"desapega-api/internal/user/repository"
	"desapega-api/pkg/encrypter"
	"desapega-api/pkg/log"
	"desapega-api/pkg/scope"
)

// implUseCase is the private implementation of user.UseCase.
type implUseCase struct {
	repo repository.Repository
	enc  encrypter.Encrypter
	jwt  scope.Manager
	l    log.Logger
}

// New creates a new user UseCase implementation.
func New(repo repository.Repository, enc encrypter.Encrypter, jwt scope.Manager, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		enc:  enc,
		jwt:  jwt,
		l:    l,
	}
}
