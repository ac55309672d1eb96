package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"clubhouse/config"
	kafkaMocks "clubhouse/infras/kafka/mocks"
	otelMocks "clubhouse/infras/otel/mocks"
	pgMocks "clubhouse/infras/postgres/mocks"
	bookingMocks "clubhouse/internal/domains/booking/mocks"
	"clubhouse/internal/domains/booking/model"
	"clubhouse/internal/domains/booking/model/dto"
	"clubhouse/internal/domains/booking/service"
	personMocks "clubhouse/internal/domains/person/mocks"
	personModel "clubhouse/internal/domains/person/model"
	"clubhouse/shared/failure"
	"clubhouse/shared/timezone"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Club.ID = 7
	cfg.Booking.MinDurationMin = 5
	cfg.Booking.CancelWindowMin = 5
	cfg.Booking.FreshWindowMin = 5
	cfg.Booking.SameDayTypeID = 1000
	cfg.Kafka.Topic = "booking_change"

	return cfg
}

func validCreateRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		CourtID:       3,
		Date:          "2026-09-01",
		Start:         "10:00",
		End:           "11:00",
		BookingTypeID: 1,
		Bumpable:      0,
		Players: []dto.CreatePlayerRequest{
			{PersonID: 11, PlayerTypeID: 1},
			{PersonID: 12, PlayerTypeID: 2},
		},
	}
}

// validSnapshot mirrors what ComputeNew derives for validCreateRequest at a
// request time before the booking starts.
func validSnapshot(reqTime time.Time) model.Snapshot {
	start, _ := timezone.UnixAt("2026-09-01", "10:00")
	end, _ := timezone.UnixAt("2026-09-01", "11:00")
	dayStart, _ := timezone.DayStartUnix("2026-09-01")

	return model.Snapshot{
		Booking: model.Booking{
			CourtID: 3,
			Date:    "2026-09-01",
			Start:   "10:00:00",
			End:     "11:00:00",
			TypeID:  1,
			Active:  1,
		},
		UTCStart:    start,
		UTCEnd:      end,
		UTCDayStart: dayStart,
		UTCReqTime:  reqTime.Unix(),
		LocReqDate:  timezone.NumericDate(reqTime),
		LocReqTime:  timezone.Clock(reqTime),
		NumericDate: 20260901,
		CourtState:  1,
		InSchedule:  true,
	}
}

type serviceMocks struct {
	repo      *bookingMocks.MockBooking
	person    *personMocks.MockPerson
	txRunner  *pgMocks.MockTxRunner
	processor *bookingMocks.MockProcessor
	events    *kafkaMocks.MockClient
}

func newService(t *testing.T) (service.Booking, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := serviceMocks{
		repo:      bookingMocks.NewMockBooking(ctrl),
		person:    personMocks.NewMockPerson(ctrl),
		txRunner:  pgMocks.NewMockTxRunner(ctrl),
		processor: bookingMocks.NewMockProcessor(ctrl),
		events:    kafkaMocks.NewMockClient(ctrl),
	}

	svc := service.New(m.repo, m.person, m.txRunner, m.processor, m.events, testConfig(), otelMocks.NewOtel())

	return svc, m
}

// runTx makes the transaction-runner mock invoke the closure with a nil
// transaction handle; the repository mocks never dereference it.
func runTx(m *pgMocks.MockTxRunner) {
	m.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*sqlx.Tx) error) error {
			return fn(nil)
		})
}

func TestBookingService_Create(t *testing.T) {
	candidates := []personModel.Candidate{
		{PersonID: 11, Firstname: "Ann", Lastname: "Ace", RoleID: sql.NullInt64{Int64: 2, Valid: true}},
		{PersonID: 12, Firstname: "Bo", Lastname: "Baseline"},
	}

	t.Run("happy path inserts and reports the id", func(t *testing.T) {
		svc, m := newService(t)

		runTx(m.txRunner)
		m.person.EXPECT().
			FindCandidates(gomock.Any(), gomock.Nil(), int64(7), []int64{11, 12}, "2026-09-01").
			Return(candidates, nil)
		m.repo.EXPECT().
			ComputeNew(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, candidate model.NewBooking, reqTime time.Time) (model.Snapshot, error) {
				assert.Equal(t, int64(2), candidate.Players[0].MemberRoleID.Int64)
				assert.False(t, candidate.Players[1].MemberRoleID.Valid)

				return validSnapshot(reqTime), nil
			})
		m.repo.EXPECT().
			Overlapping(gomock.Any(), gomock.Nil(), int64(3), "2026-09-01", "10:00", "11:00").
			Return([]model.Booking{}, nil)
		m.repo.EXPECT().
			Insert(gomock.Any(), gomock.Nil(), gomock.Any()).
			Return(int64(42), nil)
		m.events.EXPECT().
			SendMessages(gomock.Any(), "booking_change", gomock.Any()).
			Return(nil)

		id, err := svc.Create(context.Background(), validCreateRequest())

		assert.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	t.Run("duplicate player ids rejected before any transaction", func(t *testing.T) {
		svc, _ := newService(t)

		req := validCreateRequest()
		req.Players = []dto.CreatePlayerRequest{
			{PersonID: 11, PlayerTypeID: 1},
			{PersonID: 11, PlayerTypeID: 2},
		}

		_, err := svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, failure.KindValidation, failure.GetKind(err))
	})

	t.Run("unknown person is an integrity failure", func(t *testing.T) {
		svc, m := newService(t)

		runTx(m.txRunner)
		m.person.EXPECT().
			FindCandidates(gomock.Any(), gomock.Nil(), int64(7), []int64{11, 12}, "2026-09-01").
			Return(candidates[:1], nil)

		_, err := svc.Create(context.Background(), validCreateRequest())

		assert.Error(t, err)
		assert.Equal(t, failure.KindIntegrity, failure.GetKind(err))
	})

	t.Run("rule denial carries the first failing reason", func(t *testing.T) {
		svc, m := newService(t)

		runTx(m.txRunner)
		m.person.EXPECT().
			FindCandidates(gomock.Any(), gomock.Nil(), int64(7), gomock.Any(), "2026-09-01").
			Return(candidates, nil)
		m.repo.EXPECT().
			ComputeNew(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, _ model.NewBooking, reqTime time.Time) (model.Snapshot, error) {
				snapshot := validSnapshot(reqTime)
				snapshot.CourtState = 0

				return snapshot, nil
			})

		_, err := svc.Create(context.Background(), validCreateRequest())

		assert.Error(t, err)
		assert.Equal(t, failure.KindPermissionDenied, failure.GetKind(err))
		assert.Contains(t, err.Error(), "Court closed")
	})

	t.Run("overlap yields a conflict", func(t *testing.T) {
		svc, m := newService(t)

		runTx(m.txRunner)
		m.person.EXPECT().
			FindCandidates(gomock.Any(), gomock.Nil(), int64(7), gomock.Any(), "2026-09-01").
			Return(candidates, nil)
		m.repo.EXPECT().
			ComputeNew(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, _ model.NewBooking, reqTime time.Time) (model.Snapshot, error) {
				return validSnapshot(reqTime), nil
			})
		m.repo.EXPECT().
			Overlapping(gomock.Any(), gomock.Nil(), int64(3), "2026-09-01", "10:00", "11:00").
			Return([]model.Booking{{ID: 9}}, nil)

		_, err := svc.Create(context.Background(), validCreateRequest())

		assert.Error(t, err)
		assert.Equal(t, failure.KindConflict, failure.GetKind(err))
	})
}

func TestBookingService_Get(t *testing.T) {
	t.Run("future booking gets cancel and move permissions", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().
			Fetch(gomock.Any(), int64(5), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, reqTime time.Time) (model.Snapshot, error) {
				snapshot := validSnapshot(reqTime)
				snapshot.ID = 5
				snapshot.UTCStart = reqTime.Unix() + 3600
				snapshot.UTCEnd = reqTime.Unix() + 7200
				snapshot.UTCCreated = reqTime.Unix() - 3600

				return snapshot, nil
			})

		res, err := svc.Get(context.Background(), 5)

		assert.NoError(t, err)
		assert.Equal(t, []string{"cancel", "move"}, res.Permissions)
	})

	t.Run("mature ongoing booking gets end and move permissions", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().
			Fetch(gomock.Any(), int64(5), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, reqTime time.Time) (model.Snapshot, error) {
				snapshot := validSnapshot(reqTime)
				snapshot.ID = 5
				snapshot.UTCStart = reqTime.Unix() - 1800
				snapshot.UTCEnd = reqTime.Unix() + 1800
				snapshot.UTCCreated = reqTime.Unix() - 7200

				return snapshot, nil
			})

		res, err := svc.Get(context.Background(), 5)

		assert.NoError(t, err)
		assert.Equal(t, []string{"end", "move"}, res.Permissions)
	})

	t.Run("inactive booking has no permissions", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().
			Fetch(gomock.Any(), int64(5), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, reqTime time.Time) (model.Snapshot, error) {
				snapshot := validSnapshot(reqTime)
				snapshot.ID = 5
				snapshot.Active = 0

				return snapshot, nil
			})

		res, err := svc.Get(context.Background(), 5)

		assert.NoError(t, err)
		assert.Empty(t, res.Permissions)
	})
}

func TestBookingService_Patch(t *testing.T) {
	t.Run("delegates to the processor and publishes the date", func(t *testing.T) {
		svc, m := newService(t)

		cmd := dto.PatchCommand{Name: "REMOVE_SESSION", Params: []byte(`{"etag":"0123456789abcdef0123456789abcdef"}`)}

		m.processor.EXPECT().
			Execute(gomock.Any(), int64(5), cmd).
			Return(dto.PatchBookingResponse{Date: "2026-09-01"}, nil)
		m.events.EXPECT().
			SendMessages(gomock.Any(), "booking_change", gomock.Any()).
			Return(nil)

		res, err := svc.Patch(context.Background(), 5, cmd)

		assert.NoError(t, err)
		assert.Equal(t, "2026-09-01", res.Date)
	})

	t.Run("processor error propagates without an event", func(t *testing.T) {
		svc, m := newService(t)

		cmd := dto.PatchCommand{Name: "REMOVE_SESSION", Params: []byte(`{}`)}

		m.processor.EXPECT().
			Execute(gomock.Any(), int64(5), cmd).
			Return(dto.PatchBookingResponse{}, failure.NotFoundOrStale("booking"))

		_, err := svc.Patch(context.Background(), 5, cmd)

		assert.Error(t, err)
		assert.Equal(t, failure.KindNotFoundOrStale, failure.GetKind(err))
	})
}

func TestBookingService_GetForDate(t *testing.T) {
	svc, m := newService(t)

	m.repo.EXPECT().
		FetchByDate(gomock.Any(), "2026-09-01").
		Return([]model.Booking{
			{ID: 1, CourtID: 3, Date: "2026-09-01", Players: []model.Player{{PersonID: 11}}},
			{ID: 2, CourtID: 4, Date: "2026-09-01"},
		}, nil)

	res, err := svc.GetForDate(context.Background(), "2026-09-01")

	assert.NoError(t, err)
	assert.Len(t, res.Bookings, 2)
	assert.Len(t, res.Bookings[0].Players, 1)
}
