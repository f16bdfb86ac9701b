package routes

import (
	"net/http"

	"github.com/gorilla/mux"
)

const (
	NodeStatusPath         = "/v1/{kind:activities|aggregates|indicators}/{id:[0-9]+}/status"
	GetNodeStatusRouteName = "GetNodeStatus"

	NodeEventsPath         = "/v1/{kind:activities|aggregates|indicators}/{id:[0-9]+}/events"
	GetNodeEventsRouteName = "GetNodeEvents"

	RebuildPath      = "/v1/rebuild"
	RebuildRouteName = "Rebuild"

	MessagesPath             = "/v1/messages"
	PublishMessagesRouteName = "PublishMessages"
)

// BrokerRoutes returns a fresh router holding the named broker routes.
// Handlers are attached by the server.
func BrokerRoutes() *mux.Router {
	r := mux.NewRouter()
	r.Path(NodeStatusPath).Methods(http.MethodGet).Name(GetNodeStatusRouteName)
	r.Path(NodeEventsPath).Methods(http.MethodGet).Name(GetNodeEventsRouteName)
	r.Path(RebuildPath).Methods(http.MethodPost).Name(RebuildRouteName)
	r.Path(MessagesPath).Methods(http.MethodPost).Name(PublishMessagesRouteName)
	return r
}
