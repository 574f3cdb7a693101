package store

const schema = `
CREATE TABLE IF NOT EXISTS clean_runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    ran_at TIMESTAMP NOT NULL,
    keep_last INTEGER NOT NULL,
    dry_run BOOLEAN NOT NULL,
    deleted TEXT NOT NULL,
    deleted_count INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_clean_runs_ran_at ON clean_runs(ran_at);
`
