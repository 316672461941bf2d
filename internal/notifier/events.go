package notifier

import (
	"os"
	"strings"
)

// Event names double as the environment variable keys that configure
// their destination queues, e.g. DEPARTMENT_CREATED=queueA,queueB.
const (
	EventDepartmentCreated  = "DEPARTMENT_CREATED"
	EventDepartmentUpdated  = "DEPARTMENT_UPDATED"
	EventUnitCreated        = "UNIT_CREATED"
	EventUnitUpdated        = "UNIT_UPDATED"
	EventDesignationCreated = "DESIGNATION_CREATED"
	EventDesignationUpdated = "DESIGNATION_UPDATED"
	EventLocationCreated    = "LOCATION_CREATED"
	EventLocationDeleted    = "LOCATION_DELETED"
	EventHeadOfUnitCreated  = "HEADOFUNIT_CREATED"
	EventUserCreated        = "USER_CREATED"
)

func eventNames() []string {
	return []string{
		EventDepartmentCreated,
		EventDepartmentUpdated,
		EventUnitCreated,
		EventUnitUpdated,
		EventDesignationCreated,
		EventDesignationUpdated,
		EventLocationCreated,
		EventLocationDeleted,
		EventHeadOfUnitCreated,
		EventUserCreated,
	}
}

// RoutesFromEnv reads the destination queues for every known event name
// from the environment. Called once at startup; the resulting map is
// treated as read-only for the life of the process. An unset or empty
// variable means the event is not dispatched anywhere.
func RoutesFromEnv() map[string][]string {
	routes := make(map[string][]string, len(eventNames()))
	for _, event := range eventNames() {
		routes[event] = splitQueueList(os.Getenv(event))
	}
	return routes
}

func splitQueueList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	queues := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			queues = append(queues, name)
		}
	}
	return queues
}
