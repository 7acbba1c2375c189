package cli

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/dmitrijs2005/todokeeper/internal/client/api"
	"github.com/dmitrijs2005/todokeeper/internal/common"
)

func (a *App) Login(ctx context.Context) error {

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

	user, err := a.api.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			log.Printf("Server unavailable, try again later")
		} else {
			log.Printf("Login unsuccessful: %s", err.Error())
		}
		return err
	}

	a.userEmail = user.Email
	log.Printf("Login successful")
	return nil
}
