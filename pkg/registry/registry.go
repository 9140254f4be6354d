// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
)

func LoadRegistry(path string) (*ActivityRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg ActivityRegistry
	err = json.Unmarshal(data, &reg)
	return &reg, err
}

// Get returns the activity with the given id.
func (r *ActivityRegistry) Get(id string) (Activity, bool) {
	for _, activity := range r.Activities {
		if activity.ID == id {
			return activity, true
		}
	}
	return Activity{}, false
}

// ByCategory returns every activity in a category.
func (r *ActivityRegistry) ByCategory(category string) []Activity {
	var out []Activity
	for _, activity := range r.Activities {
		if activity.Category == category {
			out = append(out, activity)
		}
	}
	return out
}

// Validate checks that the registry is internally consistent: ids and task
// types filled in and unique.
func (r *ActivityRegistry) Validate() error {
	ids := make(map[string]struct{}, len(r.Activities))
	taskTypes := make(map[string]struct{}, len(r.Activities))

	for _, activity := range r.Activities {
		if activity.ID == "" {
			return fmt.Errorf("activity with empty id")
		}
		if activity.TaskType == "" {
			return fmt.Errorf("activity %s has no task type", activity.ID)
		}
		if _, dup := ids[activity.ID]; dup {
			return fmt.Errorf("duplicate activity id %s", activity.ID)
		}
		if _, dup := taskTypes[activity.TaskType]; dup {
			return fmt.Errorf("duplicate task type %s", activity.TaskType)
		}
		ids[activity.ID] = struct{}{}
		taskTypes[activity.TaskType] = struct{}{}
	}

	return nil
}
