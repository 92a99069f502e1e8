package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// User queries.
const (
	queryInsertUser = `
		INSERT INTO users (username, email, eco_points, carbon_saved)
		VALUES (@username, @email, @eco_points, @carbon_saved)
		RETURNING id, created_at`

	queryGetUser = `
		SELECT id, username, email, eco_points, carbon_saved, created_at
		FROM users
		WHERE id = $1`

	// queryLockUser serializes counter updates for one user until the
	// surrounding transaction ends.
	queryLockUser = `
		SELECT eco_points
		FROM users
		WHERE id = $1
		FOR UPDATE`

	queryCreditUser = `
		UPDATE users SET
			eco_points = eco_points + $2,
			carbon_saved = carbon_saved + $3
		WHERE id = $1`

	queryDebitUser = `
		UPDATE users SET eco_points = eco_points - $2
		WHERE id = $1`
)

// Individual pickup queries.
const (
	queryInsertDevice = `
		INSERT INTO devices (
			user_id, ewaste_type, model, ram, condition,
			estimated_price, eco_points, classification_result, image_path
		) VALUES (
			@user_id, @ewaste_type, @model, @ram, @condition,
			@estimated_price, @eco_points, @classification_result, @image_path
		)
		RETURNING id, created_at`

	queryInsertPickup = `
		INSERT INTO pickups (user_id, ewaste_id, pickup_date, address, status)
		VALUES (@user_id, @ewaste_id, @pickup_date, @address, @status)
		RETURNING id, created_at`

	selectPickupWithDevice = `
		SELECT p.id, p.user_id, p.ewaste_id, p.pickup_date, p.address, p.status, p.created_at,
			d.id, d.user_id, d.ewaste_type, d.model, d.ram, d.condition,
			d.estimated_price, d.eco_points, d.classification_result, d.image_path, d.created_at
		FROM pickups p
		JOIN devices d ON d.id = p.ewaste_id`

	queryGetPickup = selectPickupWithDevice + `
		WHERE p.id = $1`

	queryListPickupsByUser = selectPickupWithDevice + `
		WHERE p.user_id = $1
		ORDER BY p.created_at DESC, p.id DESC`

	querySetPickupStatus = `
		UPDATE pickups SET status = $2, updated_at = now()
		WHERE id = $1`
)

// Bulk pickup queries.
const (
	bulkPickupColumns = `id, user_id, organization_name, organization_type,
		contact_person, contact_email, contact_phone, pickup_address, gstin,
		preferred_date, special_instructions, total_items, estimated_eco_points,
		actual_eco_points, request_certificate, request_tax_receipt, status,
		assigned_team, certificate_number, certificate_issued_at, created_at, updated_at`

	queryInsertBulkPickup = `
		INSERT INTO bulk_pickups (
			user_id, organization_name, organization_type,
			contact_person, contact_email, contact_phone, pickup_address, gstin,
			preferred_date, special_instructions, total_items, estimated_eco_points,
			request_certificate, request_tax_receipt, status
		) VALUES (
			@user_id, @organization_name, @organization_type,
			@contact_person, @contact_email, @contact_phone, @pickup_address, @gstin,
			@preferred_date, @special_instructions, @total_items, @estimated_eco_points,
			@request_certificate, @request_tax_receipt, @status
		)
		RETURNING id, created_at, updated_at`

	queryGetBulkPickup = `SELECT ` + bulkPickupColumns + `
		FROM bulk_pickups
		WHERE id = $1`

	queryUpdateBulkPickup = `
		UPDATE bulk_pickups SET
			status = COALESCE(@status, status),
			assigned_team = COALESCE(@assigned_team, assigned_team),
			actual_eco_points = COALESCE(@actual_eco_points, actual_eco_points),
			updated_at = now()
		WHERE id = @id
		RETURNING ` + bulkPickupColumns

	querySetBulkCertificate = `
		UPDATE bulk_pickups SET
			certificate_number = $2,
			certificate_issued_at = $3,
			updated_at = now()
		WHERE id = $1 AND certificate_number IS NULL`

	queryBulkPickupExists = `SELECT EXISTS(SELECT 1 FROM bulk_pickups WHERE id = $1)`

	queryListCertificatesDue = `SELECT ` + bulkPickupColumns + `
		FROM bulk_pickups
		WHERE request_certificate
			AND certificate_number IS NULL
			AND status IN ('Collected', 'Verified')
		ORDER BY id
		LIMIT $1`

	queryInsertBulkItem = `
		INSERT INTO bulk_items (
			bulk_pickup_id, ewaste_type, brand_model, quantity, condition,
			notes, estimated_price_per_unit, eco_points_per_unit
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	queryListBulkItems = `
		SELECT id, bulk_pickup_id, ewaste_type, brand_model, quantity, condition,
			notes, estimated_price_per_unit, eco_points_per_unit
		FROM bulk_items
		WHERE bulk_pickup_id = $1
		ORDER BY id`
)

// Reward queries.
const (
	rewardColumns = `id, name, description, points_required, reward_type, stock, active, created_at`

	queryListRewards = `SELECT ` + rewardColumns + `
		FROM rewards
		ORDER BY points_required, id`

	queryListActiveRewards = `SELECT ` + rewardColumns + `
		FROM rewards
		WHERE active
		ORDER BY points_required, id`

	queryLockReward = `SELECT ` + rewardColumns + `
		FROM rewards
		WHERE id = $1
		FOR UPDATE`

	queryDecrementStock = `
		UPDATE rewards SET stock = stock - 1
		WHERE id = $1`

	queryInsertRedemption = `
		INSERT INTO redemptions (user_id, reward_id, points_spent, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
)
