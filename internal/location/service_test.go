package location

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/hrcore/hr-management/internal"
	locationDatamodel "github.com/hrcore/hr-management/internal/core/datamodel/location"
	"github.com/hrcore/hr-management/internal/notifier"
)

func TestLocation(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Location Module Suite")
}

type mockLocationRepository struct {
	locations map[int64]*locationDatamodel.Location
	nextID    int64
}

func newMockLocationRepository() *mockLocationRepository {
	return &mockLocationRepository{
		locations: make(map[int64]*locationDatamodel.Location),
		nextID:    1,
	}
}

func (m *mockLocationRepository) Create(_ context.Context, loc *locationDatamodel.Location) error {
	loc.ID = m.nextID
	m.nextID++
	m.locations[loc.ID] = loc
	return nil
}

func (m *mockLocationRepository) GetByID(_ context.Context, id int64) (*locationDatamodel.Location, error) {
	return m.locations[id], nil
}

func (m *mockLocationRepository) GetAll(_ context.Context) ([]*locationDatamodel.Location, error) {
	all := make([]*locationDatamodel.Location, 0, len(m.locations))
	for _, loc := range m.locations {
		all = append(all, loc)
	}
	return all, nil
}

func (m *mockLocationRepository) Delete(_ context.Context, id int64) error {
	delete(m.locations, id)
	return nil
}

func (m *mockLocationRepository) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := m.locations[id]
	return ok, nil
}

var _ = ginkgo.Describe("LocationService", func() {
	var (
		service  *Service
		mockRepo *mockLocationRepository
		queue    *notifier.MemoryQueue
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockLocationRepository()
		queue = notifier.NewMemoryQueue()
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		routes := map[string][]string{
			notifier.EventLocationCreated: {"loc-events"},
			notifier.EventLocationDeleted: {"loc-events"},
		}
		service = NewService(mockRepo, notifier.New(routes, queue, slogger), slogger)
	})

	ginkgo.Describe("Create", func() {
		ginkgo.It("should create a location", func() {
			created, err := service.Create(context.Background(), CreateLocationDTO{
				Location: "HQ",
				Zone:     "Central",
				State:    "Default",
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(created.ID).To(gomega.Equal(int64(1)))
			gomega.Expect(queue.Messages("loc-events")).To(gomega.HaveLen(1))
		})

		ginkgo.It("should require every field and cap each at 20 characters", func() {
			_, err := service.Create(context.Background(), CreateLocationDTO{
				Location: "",
				Zone:     "a zone name that is way too long",
				State:    "",
			})

			appErr, ok := internal.AsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Fields["location"]).To(gomega.ContainElement("The location field is required."))
			gomega.Expect(appErr.Fields["zone"]).To(gomega.ContainElement("The zone field must not be greater than 20 characters."))
			gomega.Expect(appErr.Fields["state"]).To(gomega.ContainElement("The state field is required."))
		})
	})

	ginkgo.Describe("Delete", func() {
		ginkgo.It("should remove the row and dispatch its last values", func() {
			created, err := service.Create(context.Background(), CreateLocationDTO{
				Location: "HQ", Zone: "Central", State: "Default",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			err = service.Delete(context.Background(), created.ID)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(mockRepo.locations).To(gomega.BeEmpty())

			messages := queue.Messages("loc-events")
			gomega.Expect(messages).To(gomega.HaveLen(2))

			var msg notifier.Message
			gomega.Expect(json.Unmarshal(messages[1], &msg)).To(gomega.Succeed())
			gomega.Expect(msg.Event).To(gomega.Equal(notifier.EventLocationDeleted))
			gomega.Expect(msg.Data).To(gomega.HaveKeyWithValue("location", "HQ"))
		})

		ginkgo.It("should return not found for an unknown id", func() {
			err := service.Delete(context.Background(), 42)

			appErr, ok := internal.AsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Type).To(gomega.Equal(internal.ErrorTypeNotFound))
		})
	})
})
