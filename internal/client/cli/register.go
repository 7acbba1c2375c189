package cli

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/todokeeper/internal/common"
)

func (a *App) Register(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.api.Signup(ctx, email, password)
	if err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	log.Printf("Registered %s, you can now log in", user.Email)
	return nil
}
