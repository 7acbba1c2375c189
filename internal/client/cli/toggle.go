package cli

import (
	"context"
	"log"
	"os"
)

func (a *App) Toggle(ctx context.Context) error {

	taskID, err := GetSimpleText(a.reader, "Enter task id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	task, err := a.api.ToggleTask(ctx, taskID)
	if err != nil {
		log.Printf("Toggle unsuccessful: %s", err.Error())
		return err
	}

	state := "open"
	if task.Completed {
		state = "completed"
	}
	log.Printf("Task %s is now %s", task.ID, state)
	return nil
}
