package notifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestNotifier(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Notifier Module Suite")
}

var _ = ginkgo.Describe("Notifier", func() {
	var (
		queue   *MemoryQueue
		slogger *slog.Logger
	)

	ginkgo.BeforeEach(func() {
		queue = NewMemoryQueue()
		slogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	})

	ginkgo.Describe("Dispatch", func() {
		ginkgo.It("should push one message to every queue configured for the event", func() {
			routes := map[string][]string{
				EventDepartmentCreated: {"queueA", "queueB"},
			}
			n := New(routes, queue, slogger)

			n.Dispatch(context.Background(), EventDepartmentCreated, map[string]any{"id": 1})

			gomega.Expect(queue.Messages("queueA")).To(gomega.HaveLen(1))
			gomega.Expect(queue.Messages("queueB")).To(gomega.HaveLen(1))
			gomega.Expect(queue.Len()).To(gomega.Equal(2))
		})

		ginkgo.It("should push nothing when the event has no configured queues", func() {
			n := New(map[string][]string{}, queue, slogger)

			n.Dispatch(context.Background(), EventDepartmentCreated, map[string]any{"id": 1})

			gomega.Expect(queue.Len()).To(gomega.Equal(0))
		})

		ginkgo.It("should carry the event name, a message id and the payload", func() {
			routes := map[string][]string{
				EventUnitCreated: {"queueA"},
			}
			n := New(routes, queue, slogger)

			n.Dispatch(context.Background(), EventUnitCreated, map[string]any{"name": "Platform"})

			var msg Message
			gomega.Expect(json.Unmarshal(queue.Messages("queueA")[0], &msg)).To(gomega.Succeed())
			gomega.Expect(msg.ID).ToNot(gomega.BeEmpty())
			gomega.Expect(msg.Event).To(gomega.Equal(EventUnitCreated))
			gomega.Expect(msg.Data).To(gomega.HaveKeyWithValue("name", "Platform"))
		})

		ginkgo.It("should not mix up events with different routes", func() {
			routes := map[string][]string{
				EventDepartmentCreated: {"dept-queue"},
				EventUnitCreated:       {"unit-queue"},
			}
			n := New(routes, queue, slogger)

			n.Dispatch(context.Background(), EventDepartmentCreated, map[string]any{"id": 1})

			gomega.Expect(queue.Messages("dept-queue")).To(gomega.HaveLen(1))
			gomega.Expect(queue.Messages("unit-queue")).To(gomega.BeEmpty())
		})
	})

	ginkgo.Describe("RoutesFromEnv", func() {
		ginkgo.It("should split comma-separated queue lists and trim spaces", func() {
			ginkgo.GinkgoT().Setenv(EventDepartmentCreated, "queueA, queueB ,queueC")

			routes := RoutesFromEnv()

			gomega.Expect(routes[EventDepartmentCreated]).To(gomega.Equal([]string{"queueA", "queueB", "queueC"}))
		})

		ginkgo.It("should leave unset events without destinations", func() {
			ginkgo.GinkgoT().Setenv(EventLocationDeleted, "")

			routes := RoutesFromEnv()

			gomega.Expect(routes[EventLocationDeleted]).To(gomega.BeEmpty())
		})
	})

	ginkgo.Describe("Payload", func() {
		ginkgo.It("should apply JSON visibility rules", func() {
			entity := struct {
				Name   string `json:"name"`
				Secret string `json:"-"`
			}{Name: "Platform", Secret: "hidden"}

			data := Payload(entity)

			gomega.Expect(data).To(gomega.HaveKeyWithValue("name", "Platform"))
			gomega.Expect(data).ToNot(gomega.HaveKey("Secret"))
		})
	})
})
