package record

const (
	SelectRecords = `
		SELECT id, first_name, last_name, email, phone, address, image, govt_id, created_at, updated_at
		FROM users
		ORDER BY created_at DESC, id DESC
	`
	SelectRecordByID = `
		SELECT id, first_name, last_name, email, phone, address, image, govt_id, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	InsertRecord = `
		INSERT INTO users (first_name, last_name, email, phone, address, image, govt_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING
		  id, first_name, last_name, email, phone, address, image, govt_id, created_at, updated_at
	`
	UpdateRecordByID = `
		UPDATE users
		SET first_name = COALESCE($1, first_name),
		    last_name = COALESCE($2, last_name),
		    email = COALESCE($3, email),
		    phone = COALESCE($4, phone),
		    address = COALESCE($5, address),
		    image = COALESCE($6, image),
		    govt_id = COALESCE($7, govt_id),
		    updated_at = now()
		WHERE id = $8
		RETURNING
		  id, first_name, last_name, email, phone, address, image, govt_id, created_at, updated_at
	`
	DeleteRecordByID = `
		DELETE FROM users
		WHERE id = $1
		RETURNING
		  id, first_name, last_name, email, phone, address, image, govt_id, created_at, updated_at
	`
)
