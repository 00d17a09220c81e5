package state

import (
	"testing"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoProjectFixture builds: P1 {S1, T1(in S1), T2}, P2 {T3},
// links T1->T2 (inside P1) and T1->T3 (crossing into P2).
func twoProjectFixture() (domain.Snapshot, domain.Project, domain.Project) {
	p1 := testutil.NewTestProject("P1")
	p2 := testutil.NewTestProject("P2")
	s1 := testutil.NewTestSection(p1.ID, "S1")
	t1 := testutil.NewTestTask("T1", testutil.WithSection(p1.ID, s1.ID))
	t2 := testutil.NewTestTask("T2", testutil.WithProject(p1.ID))
	t3 := testutil.NewTestTask("T3", testutil.WithProject(p2.ID))

	snap := domain.Snapshot{
		Projects: []domain.Project{p1, p2},
		Sections: []domain.Section{s1},
		Tasks:    []domain.Task{t1, t2, t3},
		Links: []domain.Link{
			testutil.NewTestLink(t1.ID, t2.ID),
			testutil.NewTestLink(t1.ID, t3.ID),
		},
	}
	return snap, p1, p2
}

func TestDeleteProject_CascadesExactly(t *testing.T) {
	snap, p1, p2 := twoProjectFixture()

	next, err := Apply(snap, DeleteProject{ID: p1.ID})
	require.NoError(t, err)

	require.Len(t, next.Projects, 1)
	assert.Equal(t, p2.ID, next.Projects[0].ID)
	assert.Empty(t, next.Sections, "sections of P1 removed")
	require.Len(t, next.Tasks, 1)
	assert.Equal(t, "T3", next.Tasks[0].Name, "tasks of P2 survive")
	assert.Empty(t, next.Links, "links with a removed endpoint are purged")
}

func TestDeleteProject_FullScenario(t *testing.T) {
	// Spec scenario: P1 -> S1 -> T1, then DELETE_PROJECT(P1) empties
	// projects, sections, tasks, and any link touching T1.
	p1 := testutil.NewTestProject("P1")
	s1 := testutil.NewTestSection(p1.ID, "S1")
	snap := domain.Snapshot{Projects: []domain.Project{p1}, Sections: []domain.Section{s1}}

	t1 := testutil.NewTestTask("T1", testutil.WithSection(p1.ID, s1.ID))
	snap, err := Apply(snap, AddTask{Task: t1})
	require.NoError(t, err)

	next, err := Apply(snap, DeleteProject{ID: p1.ID})
	require.NoError(t, err)
	assert.Empty(t, next.Projects)
	assert.Empty(t, next.Sections)
	assert.Empty(t, next.Tasks)
	assert.Empty(t, next.Links)
}

func TestDeleteProject_ClearsStaleSelection(t *testing.T) {
	snap, p1, _ := twoProjectFixture()
	snap.SelectedProjectID = p1.ID
	snap.SelectedTaskID = snap.Tasks[0].ID // T1, owned by P1
	snap.SelectedSectionID = snap.Sections[0].ID

	next, err := Apply(snap, DeleteProject{ID: p1.ID})
	require.NoError(t, err)
	assert.Empty(t, next.SelectedProjectID)
	assert.Empty(t, next.SelectedTaskID)
	assert.Empty(t, next.SelectedSectionID)
}

func TestDeleteTask_PurgesOnlyItsLinks(t *testing.T) {
	t1 := testutil.NewTestTask("T1")
	t2 := testutil.NewTestTask("T2")
	t3 := testutil.NewTestTask("T3")
	keep := testutil.NewTestLink(t2.ID, t3.ID)
	snap := domain.Snapshot{
		Tasks: []domain.Task{t1, t2, t3},
		Links: []domain.Link{
			testutil.NewTestLink(t1.ID, t2.ID),
			testutil.NewTestLink(t3.ID, t1.ID),
			keep,
		},
	}

	next, err := Apply(snap, DeleteTask{ID: t1.ID})
	require.NoError(t, err)
	assert.Len(t, next.Tasks, 2)
	require.Len(t, next.Links, 1)
	assert.Equal(t, keep.ID, next.Links[0].ID)
}

func TestDeleteSection_DetachesTasks(t *testing.T) {
	p1 := testutil.NewTestProject("P1")
	s1 := testutil.NewTestSection(p1.ID, "S1")
	t1 := testutil.NewTestTask("T1", testutil.WithSection(p1.ID, s1.ID))
	snap := domain.Snapshot{
		Projects: []domain.Project{p1},
		Sections: []domain.Section{s1},
		Tasks:    []domain.Task{t1},
	}

	next, err := Apply(snap, DeleteSection{ID: s1.ID})
	require.NoError(t, err)
	assert.Empty(t, next.Sections)
	require.Len(t, next.Tasks, 1, "tasks survive section deletion")
	assert.Empty(t, next.Tasks[0].SectionID, "task moved to the unsectioned bucket")
	assert.Equal(t, p1.ID, next.Tasks[0].ProjectID, "project membership untouched")
}

func TestDeleteUser_PrunesAssignees(t *testing.T) {
	u1 := testutil.NewTestUser("Ada")
	u2 := testutil.NewTestUser("Grace")
	t1 := testutil.NewTestTask("T1", testutil.WithAssignees(u1.ID, u2.ID))
	snap := domain.Snapshot{
		Users: []domain.User{u1, u2},
		Tasks: []domain.Task{t1},
	}

	next, err := Apply(snap, DeleteUser{ID: u1.ID})
	require.NoError(t, err)
	require.Len(t, next.Users, 1)
	assert.Equal(t, []string{u2.ID}, next.Tasks[0].Assignees)
}

func TestDelete_UnknownIDNoOp(t *testing.T) {
	snap, _, _ := twoProjectFixture()

	for _, action := range []Action{
		DeleteTask{ID: "missing"},
		DeleteProject{ID: "missing"},
		DeleteSection{ID: "missing"},
		DeleteLink{ID: "missing"},
		DeleteUser{ID: "missing"},
	} {
		next, err := Apply(snap, action)
		require.NoError(t, err, action.Name())
		assert.Equal(t, snap, next, action.Name())
	}
}

func TestDeleteLink_ByID(t *testing.T) {
	t1 := testutil.NewTestTask("T1")
	t2 := testutil.NewTestTask("T2")
	link := testutil.NewTestLink(t1.ID, t2.ID)
	snap := domain.Snapshot{Tasks: []domain.Task{t1, t2}, Links: []domain.Link{link}}

	next, err := Apply(snap, DeleteLink{ID: link.ID})
	require.NoError(t, err)
	assert.Empty(t, next.Links)
	assert.Len(t, next.Tasks, 2)
}

func TestDeleteTask_ClearsSelection(t *testing.T) {
	t1 := testutil.NewTestTask("T1")
	snap := domain.Snapshot{Tasks: []domain.Task{t1}, SelectedTaskID: t1.ID}

	next, err := Apply(snap, DeleteTask{ID: t1.ID})
	require.NoError(t, err)
	assert.Empty(t, next.SelectedTaskID)
}
