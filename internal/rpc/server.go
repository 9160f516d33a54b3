package rpc

import (
	"log/slog"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/didi-digest/backend/internal/digests"
)

func New(logger *slog.Logger, manager *digests.Manager) *zenrpc.Server {
	rpcService := NewDigestService(manager)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("digests", rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "didi-digest", nil))

	return rpcServer
}
