package action

import (
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultNotifyServer is the public ntfy instance used when the config
// names no server of its own.
const DefaultNotifyServer = "https://ntfy.sh"

// notifyTimeout keeps a slow or unreachable endpoint from stalling the
// trigger pipeline for long.
const notifyTimeout = 5 * time.Second

// Notifier posts plain-text messages to an ntfy-style topic endpoint.
type Notifier struct {
	server string
	client *http.Client
	logger *slog.Logger
}

// NewNotifier returns a Notifier for the given server base URL. An empty
// server selects DefaultNotifyServer.
func NewNotifier(server string, logger *slog.Logger) *Notifier {
	if server == "" {
		server = DefaultNotifyServer
	}
	return &Notifier{
		server: strings.TrimRight(server, "/"),
		client: &http.Client{Timeout: notifyTimeout},
		logger: logger,
	}
}

// Notify delivers message to topic. Delivery is best-effort: any failure is
// logged at Warn and otherwise ignored. An empty topic is a no-op.
func (n *Notifier) Notify(topic, message string) {
	if topic == "" {
		return
	}
	endpoint := n.server + "/" + url.PathEscape(topic)
	resp, err := n.client.Post(endpoint, "text/plain", strings.NewReader(message))
	if err != nil {
		if n.logger != nil {
			n.logger.Warn("notification failed", "topic", topic, "error", err)
		}
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= 300 && n.logger != nil {
		n.logger.Warn("notification rejected", "topic", topic, "status", resp.StatusCode)
	}
}
