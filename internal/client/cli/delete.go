package cli

import (
	"context"
	"log"
	"os"
)

func (a *App) Delete(ctx context.Context) error {

	taskID, err := GetSimpleText(a.reader, "Enter task id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.api.DeleteTask(ctx, taskID); err != nil {
		log.Printf("Delete unsuccessful: %s", err.Error())
		return err
	}

	log.Printf("Task %s deleted", taskID)
	return nil
}
