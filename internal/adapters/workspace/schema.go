package workspace

import "go.trai.ch/runx/internal/core/domain"

// TaskDTO represents a task definition in a workspace file.
type TaskDTO struct {
	Script  string         `yaml:"script,omitempty"`
	Args    []string       `yaml:"args,omitempty"`
	Options map[string]any `yaml:"options,omitempty"`
}

func (dto *TaskDTO) toTask(name string) domain.Task {
	task := domain.Task{Name: name}
	if dto == nil {
		return task
	}

	task.Script = dto.Script
	if len(dto.Args) > 0 {
		task.Args = dto.Args
	}
	if len(dto.Options) > 0 {
		task.Options = domain.Options(dto.Options)
	}
	return task
}

func newTaskDTO(task domain.Task) *TaskDTO {
	return &TaskDTO{
		Script:  task.Script,
		Args:    task.Args,
		Options: task.Options,
	}
}
