package mocks

//go:generate mockery --name EventStore --srcpkg github.com/tandem-app/tandem/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name Repository --srcpkg github.com/tandem-app/tandem/internal/core/preset --output ./preset --outpkg presetmocks --with-expecter
