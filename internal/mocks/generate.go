// Package mocks provides gomock doubles for the ports the landing service depends on.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	backend := mocks.NewMockBackend(ctrl)
//	backend.EXPECT().ListCourses(gomock.Any(), gomock.Any()).Return(courses, nil)
package mocks

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=backend_mock.go github.com/learnify/learnify-ui/internal/ports Backend

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=logout_guard_mock.go github.com/learnify/learnify-ui/internal/ports LogoutGuard

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=flash_store_mock.go github.com/learnify/learnify-ui/internal/ports FlashStore
