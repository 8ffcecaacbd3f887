package exporter

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"socctl/pkg/soc"
)

// Schema creates the tables written by PGSQLExporter.
const Schema = `
CREATE TABLE IF NOT EXISTS courses (
	id          SERIAL PRIMARY KEY,
	season      TEXT NOT NULL,
	year        INTEGER NOT NULL,
	number      TEXT NOT NULL,
	title       TEXT NOT NULL,
	units       TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS meetings (
	id          SERIAL PRIMARY KEY,
	course_id   INTEGER NOT NULL REFERENCES courses (id) ON DELETE CASCADE,
	component   TEXT NOT NULL,
	title       TEXT NOT NULL,
	lecture     BOOLEAN NOT NULL,
	days        TEXT NOT NULL,
	begin_time  TEXT,
	end_time    TEXT,
	location    TEXT NOT NULL,
	campus      TEXT NOT NULL,
	instructors TEXT NOT NULL
);`

const (
	deleteTermQuery    = "DELETE FROM courses WHERE season = $1 AND year = $2"
	insertCourseQuery  = "INSERT INTO courses (season, year, number, title, units) VALUES ($1, $2, $3, $4, $5) RETURNING id"
	insertMeetingQuery = "INSERT INTO meetings (course_id, component, title, lecture, days, begin_time, end_time, location, campus, instructors) " +
		"VALUES (:course_id, :component, :title, :lecture, :days, :begin_time, :end_time, :location, :campus, :instructors)"
)

// meetingRecord is the row shape of the meetings table.
type meetingRecord struct {
	CourseID    int     `db:"course_id"`
	Component   string  `db:"component"`
	Title       string  `db:"title"`
	Lecture     bool    `db:"lecture"`
	Days        string  `db:"days"`
	BeginTime   *string `db:"begin_time"`
	EndTime     *string `db:"end_time"`
	Location    string  `db:"location"`
	Campus      string  `db:"campus"`
	Instructors string  `db:"instructors"`
}

func meetingRecords(courseID int, comp soc.CourseComponent) []meetingRecord {
	records := make([]meetingRecord, 0, len(comp.Meetings))
	for _, m := range comp.Meetings {
		rec := meetingRecord{
			CourseID:    courseID,
			Component:   comp.Code,
			Title:       comp.Title,
			Lecture:     comp.Type == soc.Lecture,
			Days:        m.Days.String(),
			Location:    m.Location.String(),
			Campus:      m.Campus,
			Instructors: m.Instructors.String(),
		}
		if m.Time != nil {
			begin := m.Time.Begin.Format("15:04")
			end := m.Time.End.Format("15:04")
			rec.BeginTime, rec.EndTime = &begin, &end
		}
		records = append(records, rec)
	}
	return records
}

// PGSQLExporter writes parsed terms into PostgreSQL. Each term found in the input
// replaces whatever the database held for it.
type PGSQLExporter struct {
	DSN string
}

func (p PGSQLExporter) Write(ctx context.Context, courses []soc.CourseEntry) error {
	if p.DSN == "" {
		return errors.New("credentials can not be empty")
	}

	conn, err := sqlx.ConnectContext(ctx, "postgres", p.DSN)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := writeCourses(ctx, tx, courses); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func writeCourses(ctx context.Context, tx *sqlx.Tx, courses []soc.CourseEntry) error {
	type term struct {
		season string
		year   soc.Year
	}
	cleared := map[term]bool{}

	insertCourse, err := tx.PreparexContext(ctx, insertCourseQuery)
	if err != nil {
		return fmt.Errorf("failed to prepare course insert: %w", err)
	}
	defer insertCourse.Close()

	insertMeeting, err := tx.PrepareNamedContext(ctx, insertMeetingQuery)
	if err != nil {
		return fmt.Errorf("failed to prepare meeting insert: %w", err)
	}
	defer insertMeeting.Close()

	for _, c := range courses {
		key := term{season: c.Season.Code(), year: c.Year}
		if !cleared[key] {
			if _, err := tx.ExecContext(ctx, deleteTermQuery, key.season, int(key.year)); err != nil {
				return fmt.Errorf("failed to clear %s%s: %w", key.season, key.year, err)
			}
			cleared[key] = true
		}

		var courseID int
		row := insertCourse.QueryRowxContext(ctx, key.season, int(c.Year), string(c.Number), c.Title(), c.Units.String())
		if err := row.Scan(&courseID); err != nil {
			return fmt.Errorf("failed to insert course %s: %w", c.Number.Full(), err)
		}

		for _, comp := range c.Components {
			for _, rec := range meetingRecords(courseID, comp) {
				if _, err := insertMeeting.ExecContext(ctx, rec); err != nil {
					return fmt.Errorf("failed to insert meeting for %s %s: %w", c.Number.Full(), comp.Code, err)
				}
			}
		}
	}
	return nil
}
