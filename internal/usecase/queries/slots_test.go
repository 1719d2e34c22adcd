//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"salon-reserve/internal/domain/schedule"
	"salon-reserve/internal/pkg/clock"
	"salon-reserve/internal/pkg/errs"
	"salon-reserve/internal/usecase/queries"
	queriesmock "salon-reserve/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SlotQueriesTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockSchedules *queriesmock.MockScheduleReadStore
	mockCatalog   *queriesmock.MockServiceCatalog
	clock         *clock.MockClock
	queries       queries.SlotQueries

	date       time.Time
	serviceIDs []uuid.UUID
}

func (s *SlotQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSchedules = queriesmock.NewMockScheduleReadStore(s.mockCtrl)
	s.mockCatalog = queriesmock.NewMockServiceCatalog(s.mockCtrl)

	s.date = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	s.clock = clock.NewMockClock(s.date.Add(-48 * time.Hour))
	s.queries = queries.NewSlotQueries(s.mockSchedules, s.mockCatalog, s.clock)
	s.serviceIDs = []uuid.UUID{uuid.New()}
}

func (s *SlotQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSlotQueriesSuite(t *testing.T) {
	suite.Run(t, new(SlotQueriesTestSuite))
}

func (s *SlotQueriesTestSuite) day(designerID uuid.UUID, openMinute, closeMinute int) *schedule.DaySchedule {
	return &schedule.DaySchedule{
		DesignerID:  designerID,
		Date:        s.date,
		OpenMinute:  openMinute,
		CloseMinute: closeMinute,
		Granularity: 30 * time.Minute,
	}
}

func (s *SlotQueriesTestSuite) TestAvailableSlots() {
	ctx := context.Background()

	s.Run("single designer: grid minus booked intervals", func() {
		designerID := uuid.New()
		s.mockCatalog.EXPECT().TotalDurationMin(ctx, s.serviceIDs).Return(60, nil)
		s.mockSchedules.EXPECT().DayScheduleFor(ctx, designerID, s.date).
			Return(s.day(designerID, 600, 720), nil) // 10:00-12:00
		s.mockSchedules.EXPECT().NonCancelledIntervals(ctx, designerID, s.date).
			Return([]schedule.Interval{schedule.NewInterval(s.date.Add(10*time.Hour), 30*time.Minute)}, nil)

		slots, err := s.queries.AvailableSlots(ctx, &designerID, s.date, s.serviceIDs)

		require.NoError(s.T(), err)
		// 60-minute service in a 10:00-12:00 window with 10:00-10:30 taken
		assert.Equal(s.T(), []time.Time{s.date.Add(10*time.Hour + 30*time.Minute), s.date.Add(11 * time.Hour)}, slots)
	})

	s.Run("designer-agnostic: union over capable designers", func() {
		designerA := uuid.New()
		designerB := uuid.New()
		s.mockCatalog.EXPECT().TotalDurationMin(ctx, s.serviceIDs).Return(30, nil)
		s.mockSchedules.EXPECT().ActiveDesignersForServices(ctx, s.serviceIDs).
			Return([]uuid.UUID{designerA, designerB}, nil)
		s.mockSchedules.EXPECT().DayScheduleFor(ctx, designerA, s.date).
			Return(s.day(designerA, 600, 660), nil) // 10:00-11:00
		s.mockSchedules.EXPECT().NonCancelledIntervals(ctx, designerA, s.date).Return(nil, nil)
		s.mockSchedules.EXPECT().DayScheduleFor(ctx, designerB, s.date).
			Return(s.day(designerB, 630, 690), nil) // 10:30-11:30
		s.mockSchedules.EXPECT().NonCancelledIntervals(ctx, designerB, s.date).Return(nil, nil)

		slots, err := s.queries.AvailableSlots(ctx, nil, s.date, s.serviceIDs)

		require.NoError(s.T(), err)
		// 10:30 is offered by both designers but appears once
		assert.Equal(s.T(), []time.Time{
			s.date.Add(10 * time.Hour),
			s.date.Add(10*time.Hour + 30*time.Minute),
			s.date.Add(11 * time.Hour),
		}, slots)
	})

	s.Run("advancing past the window filters every slot", func() {
		designerID := uuid.New()
		s.mockCatalog.EXPECT().TotalDurationMin(ctx, s.serviceIDs).Return(60, nil)
		s.mockSchedules.EXPECT().DayScheduleFor(ctx, designerID, s.date).
			Return(s.day(designerID, 600, 720), nil)
		s.mockSchedules.EXPECT().NonCancelledIntervals(ctx, designerID, s.date).Return(nil, nil)

		s.clock.Advance(72 * time.Hour) // now past every start on the date

		slots, err := s.queries.AvailableSlots(ctx, &designerID, s.date, s.serviceIDs)

		require.NoError(s.T(), err)
		assert.Empty(s.T(), slots)
	})

	s.Run("designer-agnostic: no capable designer yields empty set", func() {
		s.mockCatalog.EXPECT().TotalDurationMin(ctx, s.serviceIDs).Return(30, nil)
		s.mockSchedules.EXPECT().ActiveDesignersForServices(ctx, s.serviceIDs).Return(nil, nil)

		slots, err := s.queries.AvailableSlots(ctx, nil, s.date, s.serviceIDs)

		require.NoError(s.T(), err)
		assert.Empty(s.T(), slots)
	})

	s.Run("empty service set is rejected", func() {
		_, err := s.queries.AvailableSlots(ctx, nil, s.date, nil)

		assert.ErrorIs(s.T(), err, errs.ErrEmptyServiceSet)
	})

	s.Run("unknown service propagates the catalog error", func() {
		s.mockCatalog.EXPECT().TotalDurationMin(ctx, s.serviceIDs).Return(0, errs.ErrServiceNotFound)

		_, err := s.queries.AvailableSlots(ctx, nil, s.date, s.serviceIDs)

		assert.ErrorIs(s.T(), err, errs.ErrServiceNotFound)
	})

	s.Run("unknown designer propagates the schedule error", func() {
		designerID := uuid.New()
		s.mockCatalog.EXPECT().TotalDurationMin(ctx, s.serviceIDs).Return(30, nil)
		s.mockSchedules.EXPECT().DayScheduleFor(ctx, designerID, s.date).
			Return(nil, errs.ErrDesignerNotFound)

		_, err := s.queries.AvailableSlots(ctx, &designerID, s.date, s.serviceIDs)

		assert.ErrorIs(s.T(), err, errs.ErrDesignerNotFound)
	})
}
