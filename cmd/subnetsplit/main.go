package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/Flarenzy/subnetsplit/internal/app"
)

//	@title			subnetsplit API
//	@version		1.0
//	@description	Splits IPv4 CIDR blocks into /24 subnets.

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:4040
//	@BasePath	/

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	code := app.Execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
