// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package review implements the paging state machine that walks a fixed link
// list page by page, tracks which links the user keeps and reports the rest
// of each page for deletion.
//
// A [Session] is not safe for concurrent use; the terminal UI event loop is
// its only caller.
package review

import "github.com/kevinlebrun/pocket-triage/models"

// DefaultPageSize is used when a non-positive page size is requested.
const DefaultPageSize = 10

// DeleteFunc receives the links of a processed page that must be deleted.
type DeleteFunc func(links []models.Link)

// Session is a single pass over a link list.
type Session struct {
	links    []models.Link
	pageSize int
	onDelete DeleteFunc

	pageIndex int // 1-based
	rowIndex  int // 0-based, within the page
	keep      map[string]struct{}
	deleted   int
	done      bool
}

// NewSession starts a review of links. onDelete may be nil.
func NewSession(links []models.Link, pageSize int, onDelete DeleteFunc) *Session {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return &Session{
		links:     links,
		pageSize:  pageSize,
		onDelete:  onDelete,
		pageIndex: 1,
		keep:      make(map[string]struct{}),
	}
}

// Page returns the links of the current page. It is empty for an empty list
// and once the session is done.
func (s *Session) Page() []models.Link {
	start := (s.pageIndex - 1) * s.pageSize
	if start >= len(s.links) {
		return nil
	}

	end := min(start+s.pageSize, len(s.links))
	return s.links[start:end]
}

// PageCount is ceil(total/pageSize).
func (s *Session) PageCount() int {
	return (len(s.links) + s.pageSize - 1) / s.pageSize
}

// MoveDown moves the cursor one row down. The bound is the page size, not
// the length of a short last page.
func (s *Session) MoveDown() {
	if s.done {
		return
	}
	if s.rowIndex < s.pageSize-1 {
		s.rowIndex++
	}
}

// MoveUp moves the cursor one row up.
func (s *Session) MoveUp() {
	if s.done {
		return
	}
	if s.rowIndex > 0 {
		s.rowIndex--
	}
}

// ToggleKeep flips the keep mark of the selected link. It does nothing when
// the cursor points past the end of a short page.
func (s *Session) ToggleKeep() {
	if s.done {
		return
	}

	link, ok := s.Selected()
	if !ok {
		return
	}

	if _, kept := s.keep[link.ID]; kept {
		delete(s.keep, link.ID)
		return
	}
	s.keep[link.ID] = struct{}{}
}

// AdvancePage closes the current page: every link neither kept nor favorite
// is counted as deleted and handed to the delete callback, the keep set is
// cleared and the cursor goes back to the first row of the next page. The
// session is done once the last page has been processed.
//
// It returns the deleted links. An empty list or a finished session makes it
// a no-op returning nil.
func (s *Session) AdvancePage() []models.Link {
	if s.done || len(s.links) == 0 {
		return nil
	}

	page := s.Page()
	toDelete := make([]models.Link, 0, len(page))
	for _, link := range page {
		if link.Favorite || s.IsKept(link) {
			continue
		}
		toDelete = append(toDelete, link)
	}

	processed := s.pageIndex
	s.deleted += len(toDelete)
	clear(s.keep)
	s.rowIndex = 0
	s.pageIndex++

	if s.onDelete != nil {
		s.onDelete(toDelete)
	}

	if processed >= s.PageCount() {
		s.done = true
	}

	return toDelete
}

// IsKept reports whether link is in the keep set of the current page.
func (s *Session) IsKept(link models.Link) bool {
	_, ok := s.keep[link.ID]
	return ok
}

// Selected returns the link under the cursor, if any.
func (s *Session) Selected() (models.Link, bool) {
	page := s.Page()
	if s.rowIndex < 0 || s.rowIndex >= len(page) {
		return models.Link{}, false
	}
	return page[s.rowIndex], true
}

func (s *Session) PageIndex() int { return s.pageIndex }
func (s *Session) Row() int       { return s.rowIndex }
func (s *Session) PageSize() int  { return s.pageSize }
func (s *Session) Total() int     { return len(s.links) }
func (s *Session) Deleted() int   { return s.deleted }
func (s *Session) Done() bool     { return s.done }

// Empty reports whether there is nothing to review.
func (s *Session) Empty() bool { return len(s.links) == 0 }
