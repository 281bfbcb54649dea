package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Documents table: one row per distinct source document, keyed by content hash
CREATE TABLE IF NOT EXISTS documents (
    document_id INTEGER PRIMARY KEY AUTOINCREMENT,
    path TEXT NOT NULL,
    content_hash TEXT NOT NULL UNIQUE,
    size_bytes INTEGER,
    page_count INTEGER DEFAULT 0,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,

    -- Analysis results
    title TEXT,
    heading_count INTEGER DEFAULT 0,
    language TEXT,
    is_academic BOOLEAN DEFAULT 0,
    academic_score REAL DEFAULT 0,

    -- Top keywords as JSON array: ["word1:count1", "word2:count2", ...]
    top_keywords TEXT
);

CREATE INDEX IF NOT EXISTS idx_documents_hash ON documents(content_hash);
CREATE INDEX IF NOT EXISTS idx_documents_path ON documents(path);
CREATE INDEX IF NOT EXISTS idx_documents_language ON documents(language);
CREATE INDEX IF NOT EXISTS idx_documents_academic ON documents(is_academic) WHERE is_academic = 1;

-- Runs: tracks each extraction invocation with auto-incrementing ID
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    document_count INTEGER NOT NULL,
    success_count INTEGER DEFAULT 0,
    failed_count INTEGER DEFAULT 0,
    input_dir TEXT,
    output_dir TEXT,
    worker_count INTEGER DEFAULT 1
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);

-- Run results: per-document outcomes within a run
CREATE TABLE IF NOT EXISTS run_results (
    result_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    document_id INTEGER NOT NULL,
    status TEXT NOT NULL,
    error_message TEXT,
    heading_count INTEGER DEFAULT 0,
    duration_ms INTEGER DEFAULT 0,
    cache_hit BOOLEAN DEFAULT 0,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE,
    FOREIGN KEY (document_id) REFERENCES documents(document_id),
    UNIQUE(run_id, document_id)
);

CREATE INDEX IF NOT EXISTS idx_run_results_run ON run_results(run_id);
CREATE INDEX IF NOT EXISTS idx_run_results_status ON run_results(status);
`
