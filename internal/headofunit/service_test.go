package headofunit

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/hrcore/hr-management/internal"
	headofunitDatamodel "github.com/hrcore/hr-management/internal/core/datamodel/headofunit"
	"github.com/hrcore/hr-management/internal/notifier"
)

func TestHeadOfUnit(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "HeadOfUnit Module Suite")
}

type mockHeadOfUnitRepository struct {
	rows   map[int64]*headofunitDatamodel.HeadOfUnit
	nextID int64
}

func newMockHeadOfUnitRepository() *mockHeadOfUnitRepository {
	return &mockHeadOfUnitRepository{
		rows:   make(map[int64]*headofunitDatamodel.HeadOfUnit),
		nextID: 1,
	}
}

func (m *mockHeadOfUnitRepository) Create(_ context.Context, hou *headofunitDatamodel.HeadOfUnit) error {
	hou.ID = m.nextID
	m.nextID++
	m.rows[hou.ID] = hou
	return nil
}

func (m *mockHeadOfUnitRepository) GetByID(_ context.Context, id int64) (*headofunitDatamodel.HeadOfUnit, error) {
	return m.rows[id], nil
}

func (m *mockHeadOfUnitRepository) GetAll(_ context.Context) ([]*headofunitDatamodel.HeadOfUnit, error) {
	all := make([]*headofunitDatamodel.HeadOfUnit, 0, len(m.rows))
	for _, row := range m.rows {
		all = append(all, row)
	}
	return all, nil
}

func (m *mockHeadOfUnitRepository) GetByUnitAndLocation(_ context.Context, unitID, locationID int64) (*headofunitDatamodel.HeadOfUnit, error) {
	var newest *headofunitDatamodel.HeadOfUnit
	for _, row := range m.rows {
		if row.UnitID != unitID || row.LocationID != locationID || row.Status != StatusActive {
			continue
		}
		if newest == nil || row.ID > newest.ID {
			newest = row
		}
	}
	return newest, nil
}

type staticChecker struct {
	existing map[int64]bool
}

func (c *staticChecker) Exists(_ context.Context, id int64) (bool, error) {
	return c.existing[id], nil
}

var _ = ginkgo.Describe("HeadOfUnitService", func() {
	var (
		service  *Service
		mockRepo *mockHeadOfUnitRepository
		queue    *notifier.MemoryQueue
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockHeadOfUnitRepository()
		queue = notifier.NewMemoryQueue()
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		routes := map[string][]string{
			notifier.EventHeadOfUnitCreated: {"hou-events"},
		}
		users := &staticChecker{existing: map[int64]bool{10: true}}
		units := &staticChecker{existing: map[int64]bool{20: true}}
		locations := &staticChecker{existing: map[int64]bool{30: true}}
		service = NewService(mockRepo, users, units, locations, notifier.New(routes, queue, slogger), slogger)
	})

	ginkgo.Describe("Create", func() {
		ginkgo.It("should create an assignment with default active status", func() {
			created, err := service.Create(context.Background(), CreateHeadOfUnitDTO{
				UserID:     10,
				UnitID:     20,
				LocationID: 30,
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(created.Status).To(gomega.Equal(StatusActive))
			gomega.Expect(queue.Messages("hou-events")).To(gomega.HaveLen(1))
		})

		ginkgo.It("should honor an explicit status", func() {
			status := StatusInactive
			created, err := service.Create(context.Background(), CreateHeadOfUnitDTO{
				UserID:     10,
				UnitID:     20,
				LocationID: 30,
				Status:     &status,
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(created.Status).To(gomega.Equal(StatusInactive))
		})

		ginkgo.It("should accumulate one error per invalid reference", func() {
			_, err := service.Create(context.Background(), CreateHeadOfUnitDTO{
				UserID:     99,
				UnitID:     98,
				LocationID: 30,
			})

			appErr, ok := internal.AsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Fields["user_id"]).To(gomega.ContainElement("The selected user_id is invalid."))
			gomega.Expect(appErr.Fields["unit_id"]).To(gomega.ContainElement("The selected unit_id is invalid."))
			gomega.Expect(appErr.Fields).ToNot(gomega.HaveKey("location_id"))
			gomega.Expect(queue.Len()).To(gomega.Equal(0))
		})

		ginkgo.It("should require all reference ids", func() {
			_, err := service.Create(context.Background(), CreateHeadOfUnitDTO{})

			appErr, ok := internal.AsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Fields).To(gomega.HaveKey("user_id"))
			gomega.Expect(appErr.Fields).To(gomega.HaveKey("unit_id"))
			gomega.Expect(appErr.Fields).To(gomega.HaveKey("location_id"))
		})

		ginkgo.It("should allow duplicate unit and location pairs", func() {
			dto := CreateHeadOfUnitDTO{UserID: 10, UnitID: 20, LocationID: 30}

			_, err := service.Create(context.Background(), dto)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			_, err = service.Create(context.Background(), dto)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			gomega.Expect(mockRepo.rows).To(gomega.HaveLen(2))
		})
	})

	ginkgo.Describe("GetByUnitAndLocation", func() {
		ginkgo.It("should return the newest active assignment when duplicates exist", func() {
			dto := CreateHeadOfUnitDTO{UserID: 10, UnitID: 20, LocationID: 30}
			_, err := service.Create(context.Background(), dto)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			second, err := service.Create(context.Background(), dto)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			found, err := service.GetByUnitAndLocation(context.Background(), 20, 30)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(found.ID).To(gomega.Equal(second.ID))
		})

		ginkgo.It("should return not found when no assignment matches", func() {
			_, err := service.GetByUnitAndLocation(context.Background(), 20, 30)

			appErr, ok := internal.AsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Type).To(gomega.Equal(internal.ErrorTypeNotFound))
		})
	})
})
