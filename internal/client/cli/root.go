package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) getStatus() string {
	if a.userEmail != "" {
		return fmt.Sprintf("(%s)", a.userEmail)
	}
	return ""
}

func (a *App) Root(ctx context.Context) {
	log.Println("Welcome to TodoKeeper CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
