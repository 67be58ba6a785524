package services

import "github.com/samber/do"

// Register provides every trivia service on the injector. *bun.DB and caching.Cache must be provided by the caller.
func Register(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*ServiceCategory, error) {
		return NewServiceCategory(i)
	})

	do.Provide(injector, func(i *do.Injector) (*ServiceQuestion, error) {
		return NewServiceQuestion(i)
	})

	do.Provide(injector, func(i *do.Injector) (*ServiceQuiz, error) {
		return NewServiceQuiz(i)
	})
}
