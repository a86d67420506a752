package mocks

//go:generate mockery --name AggregateQueryStore --srcpkg github.com/emis-lab/aggregate-query/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
