package mysql

const upsertRoomSQL = `
INSERT INTO rooms
  (id, name, room_type, status, max_guests, discount_percent, prices)
VALUES
  (?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name             = VALUES(name),
  room_type        = VALUES(room_type),
  status           = VALUES(status),
  max_guests       = VALUES(max_guests),
  discount_percent = VALUES(discount_percent),
  prices           = VALUES(prices),
  updated_at       = CURRENT_TIMESTAMP
`

const upsertAreaSQL = `
INSERT INTO areas
  (id, name, status, capacity, discount_percent, prices)
VALUES
  (?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name             = VALUES(name),
  status           = VALUES(status),
  capacity         = VALUES(capacity),
  discount_percent = VALUES(discount_percent),
  prices           = VALUES(prices),
  updated_at       = CURRENT_TIMESTAMP
`

const insertMissSQL = `
INSERT INTO sync_misses (kind, id, http_status, reason)
VALUES (?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  reason  = VALUES(reason),
  seen_at = CURRENT_TIMESTAMP
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const roomColumns = `id, name, room_type, status, max_guests, discount_percent, prices`

const getRoomSQL = `SELECT ` + roomColumns + ` FROM rooms WHERE id = ?`

const listRoomsSQL = `SELECT ` + roomColumns + ` FROM rooms ORDER BY id LIMIT ?`

const areaColumns = `id, name, status, capacity, discount_percent, prices`

const getAreaSQL = `SELECT ` + areaColumns + ` FROM areas WHERE id = ?`

const listAreasSQL = `SELECT ` + areaColumns + ` FROM areas ORDER BY id LIMIT ?`
