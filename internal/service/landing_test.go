package service

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/learnify/learnify-ui/internal/adapters/memory"
	"github.com/learnify/learnify-ui/internal/domain/course"
	"github.com/learnify/learnify-ui/internal/domain/landing"
	"github.com/learnify/learnify-ui/internal/domain/session"
	"github.com/learnify/learnify-ui/internal/mocks"
	"github.com/learnify/learnify-ui/internal/notify"
	"github.com/learnify/learnify-ui/internal/ports"
)

func userCreds(token string) ports.Credentials {
	return ports.Credentials{Cookies: []*http.Cookie{{Name: "user", Value: token}}}
}

func newService(t *testing.T, backend ports.Backend) *LandingService {
	t.Helper()
	return NewLandingService(LandingServiceOptions{
		Backend: backend,
		Guard:   memory.NewLogoutGuard(time.Minute),
	})
}

func TestNewLandingService_RequiredDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)

	assert.Panics(t, func() { NewLandingService(LandingServiceOptions{Guard: memory.NewLogoutGuard(0)}) })
	assert.Panics(t, func() { NewLandingService(LandingServiceOptions{Backend: backend}) })
	assert.NotNil(t, newService(t, backend))
}

func TestLandingService_Load(t *testing.T) {
	courses := []course.Course{
		{ID: "c1", Title: "Go", ImageURL: "https://cdn/1.png"},
		{ID: "c2", Title: "SQL", ImageURL: "https://cdn/2.png"},
		{ID: "c3", Title: "Docker", ImageURL: "https://cdn/3.png"},
	}

	tests := []struct {
		name        string
		marker      string
		list        []course.Course
		err         error
		wantAuth    bool
		wantCourses []course.Course
	}{
		{name: "authenticated with courses", marker: "tok123", list: courses, wantAuth: true, wantCourses: courses},
		{name: "anonymous with courses", marker: "", list: courses, wantAuth: false, wantCourses: courses},
		{name: "fetch failure yields empty list", marker: "tok123", err: &landing.FetchError{StatusCode: 500, Cause: errors.New("boom")}, wantAuth: true, wantCourses: []course.Course{}},
		{name: "transport failure yields empty list", marker: "", err: &landing.FetchError{Cause: errors.New("refused")}, wantCourses: []course.Course{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			backend := mocks.NewMockBackend(ctrl)
			backend.EXPECT().ListCourses(gomock.Any(), gomock.Any()).Return(tt.list, tt.err).Times(1)

			sess := session.Detect(tt.marker)
			st := newService(t, backend).Load(context.Background(), sess, userCreds(tt.marker))

			assert.Equal(t, tt.wantAuth, st.Session.Authenticated)
			assert.Equal(t, sess, st.Session, "the detected session is carried through as-is")
			assert.Equal(t, tt.wantCourses, st.Courses)
			assert.NotNil(t, st.Courses)
		})
	}
}

func TestLandingService_LoadCourses_PreservesServerOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	list := []course.Course{{ID: "z"}, {ID: "a"}, {ID: "a"}, {ID: "m"}}
	backend.EXPECT().ListCourses(gomock.Any(), gomock.Any()).Return(list, nil)

	got := newService(t, backend).LoadCourses(context.Background(), ports.Credentials{})
	assert.Equal(t, list, got)

	got[0].Title = "mutated"
	assert.Empty(t, list[0].Title)
}

func TestLandingService_LoadCourses_CoalescesConcurrentLoads(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)

	release := make(chan struct{})
	backend.EXPECT().ListCourses(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, ports.Credentials) ([]course.Course, error) {
			<-release
			return []course.Course{{ID: "c1"}}, nil
		}).Times(1)

	svc := newService(t, backend)
	creds := userCreds("same")

	const callers = 5
	var wg sync.WaitGroup
	results := make([][]course.Course, callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = svc.LoadCourses(context.Background(), creds)
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, []course.Course{{ID: "c1"}}, r)
	}
}

func TestLandingService_LoadCourses_NoCaching(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	gomock.InOrder(
		backend.EXPECT().ListCourses(gomock.Any(), gomock.Any()).Return([]course.Course{{ID: "old"}}, nil),
		backend.EXPECT().ListCourses(gomock.Any(), gomock.Any()).Return([]course.Course{{ID: "new"}}, nil),
	)

	svc := newService(t, backend)
	assert.Equal(t, "old", svc.LoadCourses(context.Background(), ports.Credentials{})[0].ID)
	assert.Equal(t, "new", svc.LoadCourses(context.Background(), ports.Credentials{})[0].ID)
}

func TestLandingService_LoadCourses_CallerCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	release := make(chan struct{})
	defer close(release)
	backend.EXPECT().ListCourses(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, ports.Credentials) ([]course.Course, error) {
			<-release
			return nil, nil
		}).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := newService(t, backend).LoadCourses(ctx, ports.Credentials{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLandingService_Logout_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	relay := []*http.Cookie{{Name: "jwt", MaxAge: -1}}
	backend.EXPECT().Logout(gomock.Any(), gomock.Any()).Return(ports.LogoutReply{Message: "Bye", Cookies: relay}, nil).Times(1)

	var rec notify.Recorder
	res, err := newService(t, backend).Logout(context.Background(), LogoutInput{
		Session:     session.Detect("tok123"),
		Credentials: userCreds("tok123"),
	}, &rec)

	require.NoError(t, err)
	assert.False(t, res.Session.Authenticated)
	assert.Equal(t, "Bye", res.Message)
	assert.Equal(t, relay, res.RelayCookies)
	assert.Equal(t, []landing.Toast{{Kind: landing.ToastSuccess, Message: "Bye"}}, rec.Toasts())
}

func TestLandingService_Logout_SuccessWithoutMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	backend.EXPECT().Logout(gomock.Any(), gomock.Any()).Return(ports.LogoutReply{}, nil)

	var rec notify.Recorder
	res, err := newService(t, backend).Logout(context.Background(), LogoutInput{
		Session:  session.Detect("tok123"),
		Messages: LogoutMessages{Success: "À bientôt"},
	}, &rec)

	require.NoError(t, err)
	assert.Equal(t, "À bientôt", res.Message)
	assert.Equal(t, []landing.Toast{{Kind: landing.ToastSuccess, Message: "À bientôt"}}, rec.Toasts())
}

func TestLandingService_Logout_MarkupOnlyMessageFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	backend.EXPECT().Logout(gomock.Any(), gomock.Any()).Return(ports.LogoutReply{Message: "<b></b>"}, nil)

	var rec notify.Recorder
	res, err := newService(t, backend).Logout(context.Background(), LogoutInput{
		Session: session.Detect("tok123"),
	}, &rec)

	require.NoError(t, err)
	assert.Equal(t, "Logged out successfully", res.Message)
	assert.Equal(t, []landing.Toast{{Kind: landing.ToastSuccess, Message: "Logged out successfully"}}, rec.Toasts())
}

func TestLandingService_Logout_Failure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "server text", err: &landing.LogoutError{StatusCode: 401, ServerMessage: "Session expired"}, want: "Session expired"},
		{name: "no server text", err: &landing.LogoutError{StatusCode: 500}, want: "Error in logging out"},
		{name: "transport", err: &landing.LogoutError{Cause: errors.New("dial tcp: refused")}, want: "Error in logging out"},
		{name: "untyped error", err: errors.New("weird"), want: "Error in logging out"},
		{name: "markup only", err: &landing.LogoutError{StatusCode: 401, ServerMessage: "<script>x</script>"}, want: "Error in logging out"},
		{name: "markup stripped", err: &landing.LogoutError{StatusCode: 401, ServerMessage: "<b>Session</b> expired"}, want: "Session expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			backend := mocks.NewMockBackend(ctrl)
			backend.EXPECT().Logout(gomock.Any(), gomock.Any()).Return(ports.LogoutReply{}, tt.err).Times(1)

			var rec notify.Recorder
			before := session.Detect("tok123")
			res, err := newService(t, backend).Logout(context.Background(), LogoutInput{Session: before}, &rec)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, before, res.Session)
			assert.True(t, res.Session.Authenticated)
			assert.Empty(t, res.RelayCookies)
			assert.Equal(t, []landing.Toast{{Kind: landing.ToastError, Message: tt.want}}, rec.Toasts())
		})
	}
}

func TestLandingService_Logout_NotAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)

	var rec notify.Recorder
	res, err := newService(t, backend).Logout(context.Background(), LogoutInput{Session: session.Detect("")}, &rec)

	require.ErrorIs(t, err, ErrNotAuthenticated)
	assert.False(t, res.Session.Authenticated)
	assert.Empty(t, rec.Toasts())
}

func TestLandingService_Logout_PendingGuard(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	guard := mocks.NewMockLogoutGuard(ctrl)
	guard.EXPECT().TryAcquire(gomock.Any(), guardKey("tok123")).Return("", false, nil)

	svc := NewLandingService(LandingServiceOptions{Backend: backend, Guard: guard})

	var rec notify.Recorder
	res, err := svc.Logout(context.Background(), LogoutInput{Session: session.Detect("tok123")}, &rec)

	require.ErrorIs(t, err, landing.ErrLogoutPending)
	assert.True(t, res.Session.Authenticated)
	assert.Equal(t, []landing.Toast{{Kind: landing.ToastInfo, Message: "Logout is already in progress"}}, rec.Toasts())
}

func TestLandingService_Logout_ConcurrentSubmissionsReachBackendOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	started := make(chan struct{})
	release := make(chan struct{})
	backend.EXPECT().Logout(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, ports.Credentials) (ports.LogoutReply, error) {
			close(started)
			<-release
			return ports.LogoutReply{Message: "Bye"}, nil
		}).Times(1)

	svc := newService(t, backend)
	in := LogoutInput{Session: session.Detect("tok123")}

	done := make(chan error, 1)
	go func() {
		_, err := svc.Logout(context.Background(), in, nil)
		done <- err
	}()
	<-started

	var rec notify.Recorder
	_, err := svc.Logout(context.Background(), in, &rec)
	require.ErrorIs(t, err, landing.ErrLogoutPending)
	assert.Equal(t, landing.ToastInfo, rec.Toasts()[0].Kind)

	close(release)
	require.NoError(t, <-done)

	// The guard is free again once the first attempt finished.
	backend.EXPECT().Logout(gomock.Any(), gomock.Any()).Return(ports.LogoutReply{Message: "Bye"}, nil)
	_, err = svc.Logout(context.Background(), in, nil)
	require.NoError(t, err)
}

func TestLandingService_Logout_GuardErrorFailsOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	guard := mocks.NewMockLogoutGuard(ctrl)
	guard.EXPECT().TryAcquire(gomock.Any(), gomock.Any()).Return("", false, errors.New("redis down"))
	backend.EXPECT().Logout(gomock.Any(), gomock.Any()).Return(ports.LogoutReply{Message: "Bye"}, nil)

	svc := NewLandingService(LandingServiceOptions{Backend: backend, Guard: guard})
	res, err := svc.Logout(context.Background(), LogoutInput{Session: session.Detect("tok123")}, nil)

	require.NoError(t, err)
	assert.False(t, res.Session.Authenticated)
}

func TestLandingService_Logout_ReleasesGuard(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	guard := mocks.NewMockLogoutGuard(ctrl)
	key := guardKey("tok123")
	gomock.InOrder(
		guard.EXPECT().TryAcquire(gomock.Any(), key).Return("lease-1", true, nil),
		guard.EXPECT().Release(gomock.Any(), key, "lease-1").Return(nil),
	)
	backend.EXPECT().Logout(gomock.Any(), gomock.Any()).Return(ports.LogoutReply{}, &landing.LogoutError{StatusCode: 500})

	svc := NewLandingService(LandingServiceOptions{Backend: backend, Guard: guard})
	_, err := svc.Logout(context.Background(), LogoutInput{Session: session.Detect("tok123")}, nil)
	require.Error(t, err)
}

func TestGuardKey(t *testing.T) {
	assert.Equal(t, guardKey("a"), guardKey("a"))
	assert.NotEqual(t, guardKey("a"), guardKey("b"))
	assert.NotContains(t, guardKey("secret-token"), "secret")
}
