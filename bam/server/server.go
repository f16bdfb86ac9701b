package server

import (
	"net/http"

	"code.cloudfoundry.org/bam-broker/db"
	"code.cloudfoundry.org/bam-broker/healthendpoint"
	"code.cloudfoundry.org/bam-broker/helpers"
	"code.cloudfoundry.org/bam-broker/routes"

	"code.cloudfoundry.org/lager/v3"
	"github.com/gorilla/mux"
	"github.com/tedsuo/ifrit"
)

type VarsFunc func(w http.ResponseWriter, r *http.Request, vars map[string]string)

func (vh VarsFunc) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vh(w, r, mux.Vars(r))
}

func NewRouter(logger lager.Logger, statuses StatusReader, eventDB db.EventDB, requester RebuildRequester, publisher Publisher, httpStatusCollector healthendpoint.HTTPStatusCollector) *mux.Router {
	nodeHandler := NewNodeHandler(logger, statuses, eventDB)
	rebuildHandler := NewRebuildHandler(logger, requester)
	ingestHandler := NewIngestHandler(logger, publisher)

	r := routes.BrokerRoutes()
	r.Use(healthendpoint.NewHTTPStatusCollectMiddleware(httpStatusCollector).Collect)
	r.Get(routes.GetNodeStatusRouteName).Handler(VarsFunc(nodeHandler.GetStatus))
	r.Get(routes.GetNodeEventsRouteName).Handler(VarsFunc(nodeHandler.GetEvents))
	r.Get(routes.RebuildRouteName).Handler(VarsFunc(rebuildHandler.Rebuild))
	r.Get(routes.PublishMessagesRouteName).Handler(VarsFunc(ingestHandler.PublishMessages))
	return r
}

func NewServer(logger lager.Logger, conf helpers.ServerConfig, statuses StatusReader, eventDB db.EventDB, requester RebuildRequester, publisher Publisher, httpStatusCollector healthendpoint.HTTPStatusCollector) (ifrit.Runner, error) {
	r := NewRouter(logger, statuses, eventDB, requester, publisher, httpStatusCollector)
	return helpers.NewHTTPServer(logger.Session("http-server"), conf, r)
}
