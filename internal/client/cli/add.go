package cli

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/todokeeper/internal/client/api"
)

func (a *App) Add(ctx context.Context) error {

	title, err := GetSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	description, err := GetOptionalText(a.reader, "Enter description", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	scheduledDate, err := GetOptionalText(a.reader, "Enter scheduled date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	task, err := a.api.AddTask(ctx, api.TaskDraft{
		Title:         title,
		Description:   description,
		ScheduledDate: scheduledDate,
	})
	if err != nil {
		log.Printf("Add unsuccessful: %s", err.Error())
		return err
	}

	log.Printf("Added task %s", task.ID)
	return nil
}
