package constants

const (
	GetUserByID = `
	SELECT * FROM users WHERE id = $1
	`

	GetUserByUsername = `
	SELECT * FROM users WHERE username = $1
	`

	InsertUser = `
	INSERT INTO users (username, password_hash, email, first_name, last_name, avatar_url, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
	RETURNING id, created_at, updated_at
	`

	UpdateUser = `
	UPDATE users
	SET email = $2, first_name = $3, last_name = $4, avatar_url = $5, updated_at = $6
	WHERE id = $1
	RETURNING *
	`

	GetEventByID = `
	SELECT * FROM events WHERE id = $1
	`

	GetAllEvents = `
	SELECT * FROM events ORDER BY id
	`

	InsertEvent = `
	INSERT INTO events (name, "date", raw_dates, "time", location, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, created_at
	`

	UpdateEvent = `
	UPDATE events
	SET name = $2, "date" = $3, raw_dates = $4, "time" = $5, location = $6
	WHERE id = $1
	RETURNING *
	`

	GetVolunteerByID = `
	SELECT * FROM volunteers WHERE id = $1
	`

	GetVolunteersByEvent = `
	SELECT * FROM volunteers WHERE event_id = $1 ORDER BY id
	`

	CountVolunteersByEvent = `
	SELECT COUNT(*) FROM volunteers WHERE event_id = $1
	`

	InsertVolunteer = `
	INSERT INTO volunteers (event_id, name, email, phone, role, team, shirt_size, dietary_needs, checked_in, check_in_time, checked_in_by, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE, NULL, NULL, $9)
	RETURNING id, created_at
	`

	UpdateVolunteer = `
	UPDATE volunteers
	SET name = $2, email = $3, phone = $4, role = $5, team = $6, shirt_size = $7, dietary_needs = $8
	WHERE id = $1
	RETURNING *
	`

	DeleteVolunteerByID = `
	DELETE FROM volunteers WHERE id = $1
	`

	CheckInVolunteer = `
	UPDATE volunteers
	SET checked_in = TRUE, check_in_time = $2, checked_in_by = $3
	WHERE id = $1
	RETURNING *
	`

	GetEventStats = `
	SELECT COUNT(*)                                        AS total,
	       COUNT(*) FILTER (WHERE checked_in)              AS checked_in
	FROM volunteers WHERE event_id = $1
	`

	GetShiftByID = `
	SELECT * FROM shifts WHERE id = $1
	`

	GetShiftsByEvent = `
	SELECT * FROM shifts WHERE event_id = $1
	`

	GetShiftsByDate = `
	SELECT * FROM shifts WHERE event_id = $1 AND shift_date::date = $2::date
	`

	InsertShift = `
	INSERT INTO shifts (event_id, shift_date, start_time, end_time, title, description, max_volunteers)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id
	`

	UpdateShift = `
	UPDATE shifts
	SET shift_date = $2, start_time = $3, end_time = $4, title = $5, description = $6, max_volunteers = $7
	WHERE id = $1
	RETURNING *
	`

	DeleteShiftByID = `
	DELETE FROM shifts WHERE id = $1
	`

	GetRoleByID = `
	SELECT * FROM roles WHERE id = $1
	`

	GetRolesByEvent = `
	SELECT * FROM roles WHERE event_id = $1 ORDER BY id
	`

	InsertRole = `
	INSERT INTO roles (event_id, name, description)
	VALUES ($1, $2, $3)
	RETURNING id
	`

	UpdateRole = `
	UPDATE roles
	SET name = $2, description = $3
	WHERE id = $1
	RETURNING *
	`

	DeleteRoleByID = `
	DELETE FROM roles WHERE id = $1
	`

	DeleteShiftRolesByRole = `
	DELETE FROM shift_roles WHERE role_id = $1
	`

	GetShiftRolePair = `
	SELECT * FROM shift_roles WHERE shift_id = $1 AND role_id = $2
	`

	GetShiftRolesWithRole = `
	SELECT sr.id AS sr_id, sr.shift_id AS sr_shift_id, sr.role_id AS sr_role_id,
	       r.id AS r_id, r.event_id AS r_event_id, r.name AS r_name, r.description AS r_description
	FROM shift_roles sr
	JOIN roles r ON r.id = sr.role_id
	WHERE sr.shift_id = $1
	ORDER BY sr.id
	`

	InsertShiftRole = `
	INSERT INTO shift_roles (shift_id, role_id)
	VALUES ($1, $2)
	RETURNING id
	`

	DeleteShiftRolePair = `
	DELETE FROM shift_roles WHERE shift_id = $1 AND role_id = $2
	`

	DeleteShiftRolesByShift = `
	DELETE FROM shift_roles WHERE shift_id = $1
	`
)
