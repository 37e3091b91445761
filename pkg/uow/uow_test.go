package uow

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type fakeRepo struct {
	db DBTX
}

type UOWTestSuite struct {
	suite.Suite
	factories map[RepositoryName]RepositoryFactory
	calls     int
}

func TestUOWSuite(t *testing.T) {
	suite.Run(t, new(UOWTestSuite))
}

func (s *UOWTestSuite) SetupTest() {
	s.calls = 0
	s.factories = map[RepositoryName]RepositoryFactory{
		"fake": func(db DBTX) Repository {
			s.calls++
			return &fakeRepo{db: db}
		},
	}
}

func (s *UOWTestSuite) TestRegister() {
	u := NewUnitOfWork(nil)

	s.Require().NoError(u.Register("fake", s.factories["fake"]))
	s.Require().ErrorIs(u.Register("fake", s.factories["fake"]), ErrRepositoryAlreadyRegistered)
	s.Require().ErrorIs(u.Register("nil", nil), ErrNilFactory)
}

func (s *UOWTestSuite) TestTransactionGet_CachesRepository() {
	tx := NewTransaction(nil, s.factories)

	first, err := tx.Get("fake")
	s.Require().NoError(err)
	second, err := tx.Get("fake")
	s.Require().NoError(err)

	s.Same(first, second)
	s.Equal(1, s.calls)
}

func (s *UOWTestSuite) TestGetAs() {
	tx := NewTransaction(nil, s.factories)

	cases := []struct {
		name    string
		repo    RepositoryName
		wantErr error
	}{
		{name: "ok", repo: "fake"},
		{name: "not registered", repo: "missing", wantErr: ErrRepositoryNotRegistered},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			repo, err := GetAs[*fakeRepo](tx, t.repo)
			if t.wantErr != nil {
				s.Require().ErrorIs(err, t.wantErr)
				s.Nil(repo)
				return
			}
			s.Require().NoError(err)
			s.NotNil(repo)
		})
	}

	_, typeErr := GetAs[string](tx, "fake")
	s.Require().ErrorIs(typeErr, ErrInvalidRepositoryType)
}

func (s *UOWTestSuite) TestWithIsoLevel() {
	u := NewUnitOfWork(nil, WithIsoLevel("serializable"))
	s.Equal("serializable", string(u.txOptions.IsoLevel))
}
