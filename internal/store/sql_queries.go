package store

const (
	// saveDelivery inserts a delivery unless (device_id, item_id) is taken.
	// RETURNING yields no row on conflict.
	saveDelivery = `INSERT INTO deliveries (device_id, item_id, kind, payload, payload_hash, attempt, received_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (device_id, item_id) DO NOTHING
		RETURNING received_at;`

	findDelivery = `SELECT payload_hash, received_at
		FROM deliveries
		WHERE device_id = $1 AND item_id = $2;`
)
