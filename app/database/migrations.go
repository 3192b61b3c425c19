package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if missing and applies incremental
// updates. Every statement is idempotent so the app can run it on every
// start.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL DEFAULT '',
			role VARCHAR(20) NOT NULL DEFAULT 'admin',
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS parents (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			relationship VARCHAR(20) NOT NULL DEFAULT 'guardian',
			phone VARCHAR(20) NOT NULL DEFAULT '',
			email VARCHAR(255) NOT NULL DEFAULT '',
			occupation VARCHAR(100) NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			notification_token TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			father_name VARCHAR(255) NOT NULL DEFAULT '',
			mother_name VARCHAR(255) NOT NULL DEFAULT '',
			date_of_birth DATE,
			gender VARCHAR(10) NOT NULL DEFAULT '',
			category VARCHAR(50) NOT NULL DEFAULT '',
			phone VARCHAR(20) NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			photo_url TEXT NOT NULL DEFAULT '',
			parent_id UUID REFERENCES parents(id),
			documents TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS classes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(100) NOT NULL,
			section VARCHAR(20) NOT NULL DEFAULT '',
			position INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ,
			UNIQUE (name, section)
		)`,

		`CREATE TABLE IF NOT EXISTS class_subjects (
			class_id UUID NOT NULL REFERENCES classes(id),
			subject VARCHAR(100) NOT NULL,
			PRIMARY KEY (class_id, subject)
		)`,

		`CREATE TABLE IF NOT EXISTS enrollments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			session VARCHAR(7) NOT NULL,
			class_id UUID NOT NULL REFERENCES classes(id),
			roll_number VARCHAR(20) NOT NULL,
			registration_no VARCHAR(20) NOT NULL,
			subjects TEXT[] NOT NULL DEFAULT '{}',
			promoted BOOLEAN NOT NULL DEFAULT false,
			next_enrollment_id UUID,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ,
			UNIQUE (student_id, session)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_enrollments_session ON enrollments(session)`,
		`CREATE INDEX IF NOT EXISTS idx_enrollments_class_session ON enrollments(class_id, session)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_enrollments_session_regno
			ON enrollments(session, registration_no) WHERE deleted_at IS NULL`,

		`CREATE TABLE IF NOT EXISTS id_counters (
			scope VARCHAR(120) PRIMARY KEY,
			value BIGINT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS teachers (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'teacher',
			subject VARCHAR(100) NOT NULL DEFAULT '',
			monthly_salary BIGINT NOT NULL DEFAULT 0,
			session VARCHAR(7) NOT NULL,
			class_teacher_of UUID REFERENCES classes(id),
			phone VARCHAR(20) NOT NULL DEFAULT '',
			email VARCHAR(255) NOT NULL DEFAULT '',
			joined_on DATE,
			promoted BOOLEAN NOT NULL DEFAULT false,
			next_teacher_id UUID,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS student_attendances (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			enrollment_id UUID NOT NULL REFERENCES enrollments(id),
			date DATE NOT NULL,
			status VARCHAR(10) NOT NULL,
			marked_by UUID,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (enrollment_id, date)
		)`,

		`CREATE TABLE IF NOT EXISTS teacher_attendances (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			teacher_id UUID NOT NULL REFERENCES teachers(id),
			date DATE NOT NULL,
			status VARCHAR(10) NOT NULL,
			remarks TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (teacher_id, date)
		)`,

		`CREATE TABLE IF NOT EXISTS attendance_summaries (
			enrollment_id UUID NOT NULL REFERENCES enrollments(id),
			year INT NOT NULL,
			month INT NOT NULL,
			present INT NOT NULL DEFAULT 0,
			absent INT NOT NULL DEFAULT 0,
			PRIMARY KEY (enrollment_id, year, month)
		)`,

		`CREATE TABLE IF NOT EXISTS holidays (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			session VARCHAR(7) NOT NULL,
			date DATE NOT NULL UNIQUE,
			reason TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS salary_records (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			teacher_id UUID NOT NULL REFERENCES teachers(id),
			session VARCHAR(7) NOT NULL,
			year INT NOT NULL,
			month INT NOT NULL,
			mode VARCHAR(20) NOT NULL,
			payable BIGINT NOT NULL,
			paid BIGINT NOT NULL,
			due BIGINT NOT NULL,
			cut BIGINT NOT NULL DEFAULT 0,
			adjustments BIGINT NOT NULL DEFAULT 0,
			notes TEXT NOT NULL DEFAULT '',
			paid_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (teacher_id, year, month)
		)`,

		`CREATE TABLE IF NOT EXISTS fee_plans (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			class_id UUID NOT NULL UNIQUE REFERENCES classes(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS fee_plan_heads (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			fee_plan_id UUID NOT NULL REFERENCES fee_plans(id) ON DELETE CASCADE,
			head VARCHAR(100) NOT NULL,
			amount BIGINT NOT NULL DEFAULT 0,
			UNIQUE (fee_plan_id, head)
		)`,

		`CREATE TABLE IF NOT EXISTS student_fees (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			enrollment_id UUID NOT NULL REFERENCES enrollments(id),
			session VARCHAR(7) NOT NULL,
			month_index INT NOT NULL,
			month INT NOT NULL,
			year INT NOT NULL,
			school_fee BIGINT NOT NULL DEFAULT 0,
			transport_fee BIGINT NOT NULL DEFAULT 0,
			paid BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (enrollment_id, month_index)
		)`,

		`CREATE TABLE IF NOT EXISTS fee_payments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			enrollment_id UUID NOT NULL REFERENCES enrollments(id),
			amount BIGINT NOT NULL,
			reference VARCHAR(100) NOT NULL DEFAULT '',
			collected_by UUID,
			paid_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS exam_results (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			enrollment_id UUID NOT NULL REFERENCES enrollments(id),
			session VARCHAR(7) NOT NULL,
			exam_type VARCHAR(100) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (enrollment_id, session, exam_type)
		)`,

		`CREATE TABLE IF NOT EXISTS exam_result_rows (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			exam_result_id UUID NOT NULL REFERENCES exam_results(id) ON DELETE CASCADE,
			subject VARCHAR(100) NOT NULL,
			total INT NOT NULL,
			marks INT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS timetable_periods (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			session VARCHAR(7) NOT NULL,
			label VARCHAR(100) NOT NULL,
			start_time VARCHAR(5) NOT NULL DEFAULT '',
			end_time VARCHAR(5) NOT NULL DEFAULT '',
			type VARCHAR(10) NOT NULL DEFAULT 'class',
			position INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS period_assignments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			period_id UUID NOT NULL REFERENCES timetable_periods(id) ON DELETE CASCADE,
			teacher_id UUID NOT NULL REFERENCES teachers(id),
			class_id UUID NOT NULL REFERENCES classes(id),
			UNIQUE (period_id, teacher_id)
		)`,

		`CREATE TABLE IF NOT EXISTS notices (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			session VARCHAR(7) NOT NULL,
			title VARCHAR(255) NOT NULL,
			body TEXT NOT NULL DEFAULT '',
			kind VARCHAR(20) NOT NULL DEFAULT 'general',
			published_on DATE NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS school_details (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			address TEXT NOT NULL DEFAULT '',
			phone VARCHAR(20) NOT NULL DEFAULT '',
			email VARCHAR(255) NOT NULL DEFAULT '',
			affiliation VARCHAR(255) NOT NULL DEFAULT '',
			logo_url TEXT NOT NULL DEFAULT '',
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS school_registrations (
			school_id VARCHAR(100) PRIMARY KEY,
			status VARCHAR(20) NOT NULL DEFAULT 'active',
			registered_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
