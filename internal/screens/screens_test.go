package screens

import (
	"context"
	"errors"
	"testing"
	"time"

	"profix/internal/api"
	"profix/internal/models"
	"profix/internal/session"
	"profix/internal/tracking"
	"profix/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockBackend stands in for the adapter on every screen.
type mockBackend struct {
	mock.Mock
}

func (m *mockBackend) LoginUser(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockBackend) LoginProvider(ctx context.Context, req models.LoginRequest) (*models.Provider, error) {
	args := m.Called(ctx, req)
	p, _ := args.Get(0).(*models.Provider)
	return p, args.Error(1)
}

func (m *mockBackend) LoginAdmin(ctx context.Context, req models.LoginRequest) (*models.Admin, error) {
	args := m.Called(ctx, req)
	a, _ := args.Get(0).(*models.Admin)
	return a, args.Error(1)
}

func (m *mockBackend) GetServices(ctx context.Context) ([]models.Service, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).([]models.Service)
	return s, args.Error(1)
}

func (m *mockBackend) RegisterUser(ctx context.Context, req models.UserRegisterRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *mockBackend) RegisterProvider(ctx context.Context, req models.ProviderRegisterRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *mockBackend) IsUnavailable(ctx context.Context, providerID models.ID, date time.Time) (bool, error) {
	args := m.Called(ctx, providerID, date)
	return args.Bool(0), args.Error(1)
}

func (m *mockBackend) CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.BookingCreated, error) {
	args := m.Called(ctx, req)
	b, _ := args.Get(0).(*models.BookingCreated)
	return b, args.Error(1)
}

func (m *mockBackend) GetProviderBookings(ctx context.Context, providerID models.ID) ([]models.Booking, error) {
	args := m.Called(ctx, providerID)
	b, _ := args.Get(0).([]models.Booking)
	return b, args.Error(1)
}

func (m *mockBackend) UpdateBookingStatus(ctx context.Context, req models.UpdateBookingStatusRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *mockBackend) GetProviderStats(ctx context.Context, providerID models.ID) (*models.ProviderStats, error) {
	args := m.Called(ctx, providerID)
	s, _ := args.Get(0).(*models.ProviderStats)
	return s, args.Error(1)
}

func (m *mockBackend) SubmitReview(ctx context.Context, req models.SubmitReviewRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *mockBackend) GetNotifications(ctx context.Context, req models.GetNotificationsRequest) ([]models.Notification, error) {
	args := m.Called(ctx, req)
	n, _ := args.Get(0).([]models.Notification)
	return n, args.Error(1)
}

func (m *mockBackend) MarkNotificationRead(ctx context.Context, req models.MarkNotificationReadRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *mockBackend) GetUserProfile(ctx context.Context, userID models.ID) (*models.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockBackend) UpdateUserProfile(ctx context.Context, req models.UpdateUserProfileRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *mockBackend) UploadUserImage(ctx context.Context, userID models.ID, img api.Image) (string, error) {
	args := m.Called(ctx, userID, img)
	return args.String(0), args.Error(1)
}

func (m *mockBackend) DeleteUserAccount(ctx context.Context, userID models.ID) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *mockBackend) SendAIChat(ctx context.Context, req models.AIChatRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *mockBackend) Reply(ctx context.Context, message string) (string, error) {
	args := m.Called(ctx, message)
	return args.String(0), args.Error(1)
}

func (m *mockBackend) GetAdminStats(ctx context.Context) (*api.AdminDashboard, error) {
	args := m.Called(ctx)
	d, _ := args.Get(0).(*api.AdminDashboard)
	return d, args.Error(1)
}

func (m *mockBackend) GetPendingProviders(ctx context.Context) ([]models.Provider, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).([]models.Provider)
	return p, args.Error(1)
}

func (m *mockBackend) GetApprovedProviders(ctx context.Context) ([]models.Provider, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).([]models.Provider)
	return p, args.Error(1)
}

func (m *mockBackend) ProviderAction(ctx context.Context, req models.ProviderActionRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func businessErr(msg string) error {
	return &api.Error{Kind: api.KindBusiness, Route: "test.php", Message: msg}
}

func networkErr(cause string) error {
	return &api.Error{Kind: api.KindNetwork, Route: "test.php", Err: errors.New(cause)}
}

func newSessions() *session.Manager {
	return session.NewManager(session.NewMemoryStore(), 0, nil)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	form := validation.LoginForm{Email: " asha@gmail.com ", Password: "secret1A!"}
	req := models.LoginRequest{Email: "asha@gmail.com", Password: "secret1A!"}

	t.Run("EmptyFields", func(t *testing.T) {
		b := new(mockBackend)
		l := NewLogin(b, newSessions(), models.RoleUser)
		_, err := l.Submit(ctx, validation.LoginForm{Email: "asha@gmail.com"})
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Equal(t, MsgFillAllFields, l.Message())
		b.AssertNotCalled(t, "LoginUser", mock.Anything, mock.Anything)
	})

	t.Run("StartsSession", func(t *testing.T) {
		b := new(mockBackend)
		b.On("LoginUser", ctx, req).Return(&models.User{ID: 7, FullName: "Asha", Email: req.Email}, nil)
		sessions := newSessions()
		l := NewLogin(b, sessions, models.RoleUser)

		s, err := l.Submit(ctx, form)
		require.NoError(t, err)
		assert.Equal(t, models.ID(7), s.UserID)
		assert.False(t, l.Loading())

		cur, err := sessions.Require(ctx, models.RoleUser)
		require.NoError(t, err)
		assert.Equal(t, s.ID, cur.ID)
	})

	t.Run("ProviderRole", func(t *testing.T) {
		b := new(mockBackend)
		b.On("LoginProvider", ctx, req).Return(&models.Provider{ID: 3, FullName: "Ravi"}, nil)
		s, err := NewLogin(b, newSessions(), models.RoleProvider).Submit(ctx, form)
		require.NoError(t, err)
		assert.Equal(t, models.RoleProvider, s.Role)
	})

	t.Run("BackendMessage", func(t *testing.T) {
		b := new(mockBackend)
		b.On("LoginUser", ctx, req).Return(nil, businessErr("Invalid credentials"))
		l := NewLogin(b, newSessions(), models.RoleUser)
		_, err := l.Submit(ctx, form)
		require.Error(t, err)
		assert.Equal(t, "Invalid credentials", l.Message())
	})

	t.Run("EmptyBackendMessage", func(t *testing.T) {
		b := new(mockBackend)
		b.On("LoginAdmin", ctx, req).Return(nil, businessErr(""))
		l := NewLogin(b, newSessions(), models.RoleAdmin)
		_, err := l.Submit(ctx, form)
		require.Error(t, err)
		assert.Equal(t, MsgLoginFailed, l.Message())
	})

	t.Run("NetworkError", func(t *testing.T) {
		b := new(mockBackend)
		b.On("LoginUser", ctx, req).Return(nil, networkErr("connection refused"))
		l := NewLogin(b, newSessions(), models.RoleUser)
		_, err := l.Submit(ctx, form)
		require.Error(t, err)
		assert.Equal(t, "Network error: connection refused", l.Message())
	})
}

func TestRegisterFieldErrorsBlockCall(t *testing.T) {
	b := new(mockBackend)
	r := NewRegister(b)
	_, err := r.SubmitUser(context.Background(), validation.UserRegistration{
		FullName: "Asha",
		Email:    "asha@yahoo.com",
		Phone:    "98765",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.NotEmpty(t, r.FieldError("email"))
	assert.NotEmpty(t, r.FieldError("phone"))
	assert.Empty(t, r.FieldError("full_name"))
	b.AssertNotCalled(t, "RegisterUser", mock.Anything, mock.Anything)
}

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()
	b := new(mockBackend)
	b.On("RegisterUser", ctx, mock.AnythingOfType("models.UserRegisterRequest")).
		Return("Registration successful", nil)

	r := NewRegister(b)
	msg, err := r.SubmitUser(ctx, validation.UserRegistration{
		FullName:        "Asha Rao",
		Email:           "asha@gmail.com",
		Phone:           "9876543210",
		DOB:             "1995-04-12",
		Address:         "12 MG Road",
		City:            "Pune",
		Pincode:         "411001",
		Password:        "Secret1!x",
		ConfirmPassword: "Secret1!x",
	})
	require.NoError(t, err)
	assert.Equal(t, "Registration successful", msg)
	b.AssertExpectations(t)
}

func TestBookingConfirm(t *testing.T) {
	ctx := context.Background()
	user := &session.Session{Role: models.RoleUser, UserID: 7}
	provider := models.Provider{ID: 3, HourlyRate: 250}
	date := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)

	t.Run("BlockedDate", func(t *testing.T) {
		b := new(mockBackend)
		b.On("IsUnavailable", ctx, models.ID(3), date).Return(true, nil)
		bc := NewBookingConfirm(b, b, user, provider)

		err := bc.PickDate(ctx, date)
		assert.ErrorIs(t, err, ErrDateUnavailable)
		assert.Empty(t, bc.Form().BookingDate)
		assert.Equal(t, "Provider is unavailable on 2026-03-14. Please choose another date.", bc.Message())
	})

	t.Run("BusinessErrorAcceptsDate", func(t *testing.T) {
		b := new(mockBackend)
		b.On("IsUnavailable", ctx, models.ID(3), date).Return(false, businessErr("No availability set"))
		bc := NewBookingConfirm(b, b, user, provider)

		require.NoError(t, bc.PickDate(ctx, date))
		assert.Equal(t, "2026-03-14", bc.Form().BookingDate)
		assert.Empty(t, bc.Message())
	})

	t.Run("ServerErrorAcceptsDate", func(t *testing.T) {
		b := new(mockBackend)
		b.On("IsUnavailable", ctx, models.ID(3), date).
			Return(false, &api.Error{Kind: api.KindNetwork, Route: "test.php", Status: 500, Err: errors.New("http 500")})
		bc := NewBookingConfirm(b, b, user, provider)

		require.NoError(t, bc.PickDate(ctx, date))
		assert.Equal(t, "2026-03-14", bc.Form().BookingDate)
		assert.Empty(t, bc.Message())
	})

	t.Run("NetworkErrorLeavesDateUnset", func(t *testing.T) {
		b := new(mockBackend)
		b.On("IsUnavailable", ctx, models.ID(3), date).Return(false, networkErr("timeout"))
		bc := NewBookingConfirm(b, b, user, provider)

		require.Error(t, bc.PickDate(ctx, date))
		assert.Empty(t, bc.Form().BookingDate)
		assert.Equal(t, MsgAvailabilityNetError, bc.Message())
	})

	t.Run("HoursClampAndTotal", func(t *testing.T) {
		bc := NewBookingConfirm(new(mockBackend), new(mockBackend), user, provider)
		assert.Equal(t, 250.0, bc.Total())
		bc.SetHours(20)
		assert.Equal(t, MaxBookingHours, bc.Form().EstimatedHours)
		assert.Equal(t, 3000.0, bc.Total())
		bc.SetHours(0)
		assert.Equal(t, MinBookingHours, bc.Form().EstimatedHours)
	})

	t.Run("SubmitChecksFieldsInOrder", func(t *testing.T) {
		b := new(mockBackend)
		b.On("IsUnavailable", ctx, models.ID(3), date).Return(false, nil)
		bc := NewBookingConfirm(b, b, user, provider)

		_, err := bc.Submit(ctx)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Equal(t, MsgSelectDate, bc.Message())

		require.NoError(t, bc.PickDate(ctx, date))
		_, _ = bc.Submit(ctx)
		assert.Equal(t, MsgSelectTime, bc.Message())

		require.NoError(t, bc.SetTime("9:30"))
		_, _ = bc.Submit(ctx)
		assert.Equal(t, MsgEnterAddress, bc.Message())
		b.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	})

	t.Run("Submit", func(t *testing.T) {
		b := new(mockBackend)
		b.On("IsUnavailable", ctx, models.ID(3), date).Return(false, nil)
		b.On("CreateBooking", ctx, mock.MatchedBy(func(r models.CreateBookingRequest) bool {
			return r.UserID == 7 && r.ProviderID == 3 && r.BookingDate == "2026-03-14" &&
				r.BookingTime == "09:30" && r.Pincode == "411001" && r.EstimatedHours == 2
		})).Return(&models.BookingCreated{ID: 55, TotalAmount: 500, Status: models.StatusPending}, nil)

		bc := NewBookingConfirm(b, b, user, provider)
		require.NoError(t, bc.PickDate(ctx, date))
		require.NoError(t, bc.SetTime("09:30"))
		bc.SetAddress(" 12 MG Road ", "Pune", "411-001")
		bc.SetHours(2)

		created, err := bc.Submit(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.ID(55), created.ID)
		assert.Equal(t, created, bc.Created())
		b.AssertExpectations(t)
	})
}

func sampleBookings() []models.Booking {
	return []models.Booking{
		{ID: 1, Status: models.StatusPending, TotalAmount: 300},
		{ID: 2, Status: models.StatusAccepted, TotalAmount: 900},
		{ID: 3, Status: models.StatusInProgress, TotalAmount: 100},
		{ID: 4, Status: models.StatusCompleted, TotalAmount: 500},
		{ID: 5, Status: models.StatusCancelled, TotalAmount: 700},
	}
}

func ids(list []models.Booking) []models.ID {
	out := make([]models.ID, 0, len(list))
	for _, b := range list {
		out = append(out, b.ID)
	}
	return out
}

func TestFilterBookings(t *testing.T) {
	list := sampleBookings()
	assert.Len(t, FilterBookings(list, TabAll, false), 5)
	assert.Equal(t, []models.ID{1}, ids(FilterBookings(list, TabPending, false)))
	assert.Equal(t, []models.ID{2, 3}, ids(FilterBookings(list, TabActive, false)))
	assert.Equal(t, []models.ID{1, 2, 3}, ids(FilterBookings(list, TabActive, true)))
	assert.Equal(t, []models.ID{4}, ids(FilterBookings(list, TabCompleted, false)))

	tab, err := ParseTab("completed")
	require.NoError(t, err)
	assert.Equal(t, TabCompleted, tab)
	_, err = ParseTab("done")
	assert.Error(t, err)

	assert.True(t, CanRate(list[3]))
	assert.False(t, CanRate(list[1]))
	assert.True(t, CanTrack(list[2]))
	assert.False(t, CanTrack(list[0]))
}

func TestProviderBookingsStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("PassesStatusAndReloads", func(t *testing.T) {
		b := new(mockBackend)
		b.On("GetProviderBookings", ctx, models.ID(3)).Return(sampleBookings(), nil)
		b.On("UpdateBookingStatus", ctx, mock.MatchedBy(func(r models.UpdateBookingStatusRequest) bool {
			return r.BookingID == 4 && r.Status == models.StatusAccepted && r.ProviderID != nil && *r.ProviderID == 3
		})).Return("Booking updated", nil)

		p := NewProviderBookings(b, 3)
		// Completed to accepted is the backend's call to refuse, not ours.
		require.NoError(t, p.Accept(ctx, 4))
		assert.Equal(t, "Booking updated", p.Message())
		assert.Len(t, p.Tab(TabAll, false), 5)
		b.AssertNumberOfCalls(t, "GetProviderBookings", 1)
	})

	t.Run("RejectSendsCancelled", func(t *testing.T) {
		b := new(mockBackend)
		b.On("UpdateBookingStatus", ctx, mock.MatchedBy(func(r models.UpdateBookingStatusRequest) bool {
			return r.Status == models.StatusCancelled
		})).Return("", businessErr("Booking not found"))

		p := NewProviderBookings(b, 3)
		require.Error(t, p.Reject(ctx, 9))
		assert.Equal(t, "Booking not found", p.Message())
		b.AssertNotCalled(t, "GetProviderBookings", mock.Anything, mock.Anything)
	})

	t.Run("HighestFirst", func(t *testing.T) {
		b := new(mockBackend)
		b.On("GetProviderBookings", ctx, models.ID(3)).Return(sampleBookings(), nil)
		p := NewProviderBookings(b, 3)
		require.NoError(t, p.Load(ctx))
		assert.Equal(t, []models.ID{2, 5, 4, 1, 3}, ids(p.Tab(TabAll, true)))
	})
}

func TestEarningsPeriods(t *testing.T) {
	ctx := context.Background()
	b := new(mockBackend)
	b.On("GetProviderBookings", ctx, models.ID(3)).Return([]models.Booking{
		{ID: 1, Status: models.StatusCompleted, BookingDate: "2026-10-17", TotalAmount: 400},
		{ID: 2, Status: models.StatusCompleted, BookingDate: "2026-10-01", TotalAmount: 600},
		{ID: 3, Status: models.StatusCompleted, BookingDate: "2026-06-01", TotalAmount: 1000},
		{ID: 4, Status: models.StatusPending, BookingDate: "2026-10-18", TotalAmount: 50},
	}, nil)
	b.On("GetProviderStats", ctx, models.ID(3)).Return(nil, networkErr("timeout"))

	e := NewEarnings(b, 3)
	e.now = func() time.Time { return time.Date(2026, time.October, 19, 15, 0, 0, 0, time.UTC) }

	require.NoError(t, e.Load(ctx))
	assert.Nil(t, e.Stats())
	assert.NotEmpty(t, e.Message())

	assert.Equal(t, []models.ID{1}, ids(e.In(PeriodWeek)))
	assert.Equal(t, []models.ID{1, 2}, ids(e.In(PeriodMonth)))
	assert.Equal(t, 2000.0, e.Total(PeriodAll))

	exp := e.Export(PeriodMonth, "Ravi")
	assert.Equal(t, "This Month", exp.Period)
	assert.Len(t, exp.Bookings, 2)

	p, err := ParsePeriod("week")
	require.NoError(t, err)
	assert.Equal(t, PeriodWeek, p)
	_, err = ParsePeriod("year")
	assert.Error(t, err)
}

func TestRating(t *testing.T) {
	ctx := context.Background()

	t.Run("NoStars", func(t *testing.T) {
		r := NewRating(new(mockBackend), 4, 7)
		assert.ErrorIs(t, r.Submit(ctx, validation.ReviewForm{}), ErrInvalidInput)
		assert.Equal(t, MsgSelectRating, r.Message())
	})

	t.Run("Submits", func(t *testing.T) {
		b := new(mockBackend)
		b.On("SubmitReview", ctx, models.SubmitReviewRequest{BookingID: 4, UserID: 7, Rating: 5, Comment: "Great"}).
			Return("Review submitted", nil)
		r := NewRating(b, 4, 7)
		require.NoError(t, r.Submit(ctx, validation.ReviewForm{Rating: 5, Comment: " Great "}))
		assert.True(t, r.Done())
		assert.Equal(t, MsgReviewThanks, r.Message())
	})

	t.Run("AlreadyReviewed", func(t *testing.T) {
		b := new(mockBackend)
		b.On("SubmitReview", ctx, mock.Anything).Return("", businessErr("Already reviewed"))
		r := NewRating(b, 4, 7)
		require.Error(t, r.Submit(ctx, validation.ReviewForm{Rating: 3}))
		assert.False(t, r.Done())
		assert.Equal(t, "Already reviewed", r.Message())
	})
}

func TestNotificationsRecipient(t *testing.T) {
	ctx := context.Background()
	b := new(mockBackend)
	b.On("GetNotifications", ctx, mock.MatchedBy(func(r models.GetNotificationsRequest) bool {
		return r.UserID == nil && r.ProviderID != nil && *r.ProviderID == 3
	})).Return([]models.Notification{{ID: 1}, {ID: 2}, {ID: 3, IsRead: true}}, nil)
	b.On("MarkNotificationRead", ctx, mock.MatchedBy(func(r models.MarkNotificationReadRequest) bool {
		return !r.MarkAll && r.NotificationID != nil && *r.NotificationID == 2
	})).Return("ok", nil)
	b.On("MarkNotificationRead", ctx, mock.MatchedBy(func(r models.MarkNotificationReadRequest) bool {
		return r.MarkAll && r.NotificationID == nil && r.ProviderID != nil
	})).Return("ok", nil)

	n := NewNotifications(b, &session.Session{Role: models.RoleProvider, UserID: 3})
	require.NoError(t, n.Load(ctx))
	assert.Equal(t, 2, n.Unread())

	require.NoError(t, n.MarkRead(ctx, 2))
	assert.Equal(t, 1, n.Unread())

	require.NoError(t, n.MarkAll(ctx))
	assert.Equal(t, 0, n.Unread())
	b.AssertExpectations(t)
}

func TestUserProfileSendsChangedFields(t *testing.T) {
	ctx := context.Background()
	cur := &models.User{ID: 7, FullName: "Asha Rao", Phone: "9876543210", City: "Pune"}

	b := new(mockBackend)
	b.On("GetUserProfile", ctx, models.ID(7)).Return(cur, nil)
	b.On("UpdateUserProfile", ctx, mock.MatchedBy(func(r models.UpdateUserProfileRequest) bool {
		return r.FullName == nil && r.Phone == nil && r.City != nil && *r.City == "Mumbai"
	})).Return("Updated", nil)

	sessions := newSessions()
	p := NewUserProfile(b, sessions, 7)
	require.NoError(t, p.Load(ctx))
	require.NoError(t, p.Save(ctx, validation.ProfileUpdate{FullName: "Asha Rao", Phone: "9876543210", City: "Mumbai"}))
	assert.Equal(t, MsgProfileUpdated, p.Message())
	b.AssertExpectations(t)
}

func TestUserProfileDeleteEndsSession(t *testing.T) {
	ctx := context.Background()
	b := new(mockBackend)
	b.On("LoginUser", ctx, mock.Anything).Return(&models.User{ID: 7, FullName: "Asha"}, nil)
	b.On("DeleteUserAccount", ctx, models.ID(7)).Return("Deleted", nil)

	sessions := newSessions()
	_, err := NewLogin(b, sessions, models.RoleUser).Submit(ctx, validation.LoginForm{Email: "a@gmail.com", Password: "x"})
	require.NoError(t, err)

	p := NewUserProfile(b, sessions, 7)
	require.NoError(t, p.DeleteAccount(ctx))
	assert.Equal(t, MsgAccountDeleted, p.Message())

	_, err = sessions.Current(ctx)
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestServiceChat(t *testing.T) {
	ctx := context.Background()
	router := api.NewServiceRouter(api.DefaultServiceCategories())

	t.Run("RoutesToCategory", func(t *testing.T) {
		b := new(mockBackend)
		b.On("Reply", ctx, "my fan is broken").Return("Electrician", nil)
		c := NewServiceChat(b, router)

		require.NoError(t, c.Send(ctx, "my fan is broken"))
		msgs := c.Messages()
		require.Len(t, msgs, 3)
		assert.Equal(t, api.ChatGreeting, msgs[0].Text)
		assert.True(t, msgs[1].IsUser)
		require.NotNil(t, c.Navigate())
		assert.Equal(t, "Electrician", c.Navigate().Name)
	})

	t.Run("ConnectionError", func(t *testing.T) {
		b := new(mockBackend)
		b.On("Reply", ctx, "hello").Return("", networkErr("refused"))
		c := NewServiceChat(b, router)

		require.Error(t, c.Send(ctx, "hello"))
		msgs := c.Messages()
		assert.Equal(t, api.ChatConnectionError, msgs[len(msgs)-1].Text)
		assert.Nil(t, c.Navigate())
	})

	t.Run("BlankIgnored", func(t *testing.T) {
		c := NewServiceChat(new(mockBackend), router)
		require.NoError(t, c.Send(ctx, "   "))
		assert.Len(t, c.Messages(), 1)
	})
}

func TestAssistantChat(t *testing.T) {
	ctx := context.Background()
	b := new(mockBackend)
	b.On("SendAIChat", ctx, models.AIChatRequest{Message: "pricing tips", UserType: models.RoleProvider, ProviderID: 3}).
		Return("Charge by the hour.", nil)

	c := NewAssistantChat(b, &session.Session{Role: models.RoleProvider, UserID: 3})
	assert.Equal(t, ProviderChatGreeting, c.Messages()[0].Text)

	require.NoError(t, c.Send(ctx, " pricing tips "))
	msgs := c.Messages()
	assert.Equal(t, "Charge by the hour.", msgs[len(msgs)-1].Text)

	b2 := new(mockBackend)
	b2.On("SendAIChat", ctx, mock.Anything).Return("", businessErr(""))
	c2 := NewAssistantChat(b2, &session.Session{Role: models.RoleUser, UserID: 7})
	require.Error(t, c2.Send(ctx, "hi"))
	msgs = c2.Messages()
	assert.Equal(t, msgAssistantFallback, msgs[len(msgs)-1].Text)
}

func TestTrackingApply(t *testing.T) {
	lat, lng := models.Num(18.52), models.Num(73.85)
	tr := NewTracking(nil, 9)

	tr.Apply(tracking.Update{Location: &models.Location{CanTrack: true, LocationAvailable: true, Latitude: &lat, Longitude: &lng}})
	require.NotNil(t, tr.LastFix())
	assert.Empty(t, tr.Message())

	tr.Apply(tracking.Update{Location: &models.Location{CanTrack: true, Message: "Provider has not shared location yet"}})
	assert.Equal(t, "Provider has not shared location yet", tr.Message())
	assert.False(t, tr.Latest().HasFix())
	assert.Equal(t, lat, *tr.LastFix().Latitude)

	tr.Apply(tracking.Update{Err: businessErr("")})
	assert.Equal(t, MsgLocationFailed, tr.Message())
}

func TestApprovalsRejectReason(t *testing.T) {
	ctx := context.Background()
	b := new(mockBackend)
	b.On("ProviderAction", ctx, mock.MatchedBy(func(r models.ProviderActionRequest) bool {
		return r.Action == models.ActionReject && r.RejectionReason == nil
	})).Return("Provider rejected", nil).Once()
	b.On("ProviderAction", ctx, mock.MatchedBy(func(r models.ProviderActionRequest) bool {
		return r.Action == models.ActionReject && r.RejectionReason != nil && *r.RejectionReason == "Blurry ID"
	})).Return("Provider rejected", nil).Once()
	b.On("GetPendingProviders", ctx).Return([]models.Provider{{ID: 11}}, nil)

	a := NewApprovals(b)
	require.NoError(t, a.Reject(ctx, 10, "  "))
	require.NoError(t, a.Reject(ctx, 10, "Blurry ID"))
	assert.Equal(t, "Provider rejected", a.Message())
	assert.Len(t, a.Pending(), 1)
	b.AssertExpectations(t)
}

func TestDashboardKeepsStatsWhenListFails(t *testing.T) {
	ctx := context.Background()
	b := new(mockBackend)
	b.On("GetAdminStats", ctx).Return(&api.AdminDashboard{Stats: models.AdminStats{}}, nil)
	b.On("GetApprovedProviders", ctx).Return(nil, networkErr("reset"))

	d := NewDashboard(b)
	require.NoError(t, d.Load(ctx))
	assert.NotNil(t, d.Data())
	assert.Equal(t, "Network error: reset", d.Message())
}
