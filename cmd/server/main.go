package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/sealvault/internal/buildinfo"
	"github.com/dmitrijs2005/sealvault/internal/server"
	"github.com/dmitrijs2005/sealvault/internal/server/auth"
	"github.com/dmitrijs2005/sealvault/internal/server/config"
)

// Usage:
//
//	sealvault [flags]               serve the vault
//	sealvault [flags] token <owner> print an owner token signed with the configured secret
func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	if len(os.Args) > 2 && os.Args[len(os.Args)-2] == "token" {
		owner := os.Args[len(os.Args)-1]
		token, err := auth.GenerateToken(owner, []byte(cfg.SecretKey), cfg.AccessTokenValidityDuration)
		if err != nil {
			log.Fatalf("%v", err)
		}
		fmt.Println(token)
		return
	}

	buildinfo.PrintBuildData(os.Stdout)

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
