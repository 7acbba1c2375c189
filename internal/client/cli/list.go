package cli

import (
	"context"
	"fmt"
	"log"
)

func (a *App) List(ctx context.Context) error {

	tasks, err := a.api.ListTasks(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks yet")
		return nil
	}

	for _, t := range tasks {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		line := fmt.Sprintf("[%s] %s  %s", mark, t.ID, t.Title)
		if t.ScheduledDate != nil {
			line += " (" + *t.ScheduledDate + ")"
		}
		fmt.Println(line)
	}
	return nil
}
