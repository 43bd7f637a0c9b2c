package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CartItemsAdded counts POST /cart calls that created or merged a line.
	CartItemsAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cart_items_added_total",
		Help: "The total number of cart add operations",
	})

	// CartItemsRemoved counts lines removed by delete or a zero-quantity update.
	CartItemsRemoved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cart_items_removed_total",
		Help: "The total number of cart lines removed",
	})

	// ContactMessagesCreated counts accepted contact form submissions.
	ContactMessagesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "contact_messages_created_total",
		Help: "The total number of contact messages stored",
	})
)
