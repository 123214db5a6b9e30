// Package domain contains shared domain types used across entity sub-packages.
// Entity types live in domain/content and the table-store vocabulary (records,
// filters, ordering) lives in domain/table. This root package holds sentinel
// errors, the error taxonomy surfaced to callers (fetch, upload, write and
// validation failures) and the Action/WriteStager interfaces shared by the
// application layer.
package domain
