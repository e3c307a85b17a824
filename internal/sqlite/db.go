package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the schema and seeds the fixed standard and
// profession definitions.
func (db *DB) RunMigrations() error {
	migration := `
-- Delivery projects
CREATE TABLE projects (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT,
    phase TEXT NOT NULL CHECK(phase IN ('discovery', 'alpha', 'beta', 'live')),
    tags TEXT,
    status TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Service standard points (seeded, read-only)
CREATE TABLE standards (
    number INTEGER PRIMARY KEY,
    name TEXT NOT NULL
);

-- Assessing professions (seeded, read-only)
CREATE TABLE professions (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL
);

-- Current assessment per (project, standard, profession)
CREATE TABLE assessments (
    project_id TEXT NOT NULL,
    standard_number INTEGER NOT NULL,
    profession_id TEXT NOT NULL,
    status TEXT NOT NULL,
    commentary TEXT,
    updated_at TIMESTAMP NOT NULL,
    changed_by TEXT NOT NULL,
    PRIMARY KEY (project_id, standard_number, profession_id),
    FOREIGN KEY (project_id) REFERENCES projects(id),
    FOREIGN KEY (standard_number) REFERENCES standards(number),
    FOREIGN KEY (profession_id) REFERENCES professions(id)
);
CREATE INDEX idx_project_assessments ON assessments(project_id);

-- Derived per-standard summary cache, recomputed on every contributing write
CREATE TABLE standard_summaries (
    project_id TEXT NOT NULL,
    standard_number INTEGER NOT NULL,
    status TEXT NOT NULL,
    commentary TEXT,
    updated_at TIMESTAMP NOT NULL,
    contributions TEXT NOT NULL,
    PRIMARY KEY (project_id, standard_number),
    FOREIGN KEY (project_id) REFERENCES projects(id),
    FOREIGN KEY (standard_number) REFERENCES standards(number)
);
CREATE INDEX idx_project_summaries ON standard_summaries(project_id);

-- Append-only change ledger; archived is the only mutable column
CREATE TABLE history (
    id TEXT PRIMARY KEY,
    project_id TEXT NOT NULL,
    standard_number INTEGER,
    profession_id TEXT,
    timestamp TIMESTAMP NOT NULL,
    actor TEXT NOT NULL,
    changes TEXT NOT NULL,
    archived INTEGER NOT NULL DEFAULT 0,
    FOREIGN KEY (project_id) REFERENCES projects(id)
);
CREATE INDEX idx_project_history ON history(project_id);
CREATE INDEX idx_history_scope ON history(project_id, standard_number, profession_id);
CREATE INDEX idx_history_timestamp ON history(timestamp);

-- API keys for authentication
CREATE TABLE api_keys (
    key_hash TEXT PRIMARY KEY,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    last_used TIMESTAMP,
    description TEXT
);

INSERT INTO standards (number, name) VALUES
    (1, 'Understand users and their needs'),
    (2, 'Solve a whole problem for users'),
    (3, 'Provide a joined up experience across all channels'),
    (4, 'Make the service simple to use'),
    (5, 'Make sure everyone can use the service'),
    (6, 'Have a multidisciplinary team'),
    (7, 'Use agile ways of working'),
    (8, 'Iterate and improve frequently'),
    (9, 'Create a secure service which protects users'' privacy'),
    (10, 'Define what success looks like and publish performance data'),
    (11, 'Choose the right tools and technology'),
    (12, 'Make new source code open'),
    (13, 'Use and contribute to open standards, common components and patterns'),
    (14, 'Operate a reliable service');

INSERT INTO professions (id, name) VALUES
    ('product', 'Product'),
    ('delivery', 'Delivery'),
    ('user-centred-design', 'User-centred design'),
    ('user-research', 'User research'),
    ('technical-architecture', 'Technical architecture'),
    ('software-engineering', 'Software engineering'),
    ('quality-assurance', 'Quality assurance');
`

	_, err := db.Exec(migration)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
