package repository

import "github.com/facilitydesk/core/internal/domain/entities"

var seedServices = []entities.Service{
	{
		ID:          1,
		ServiceName: "mo",
		Building:    "Digi",
		Floor:       "2nd Floor",
		Unit:        "Vibe Workforce",
		CreatedBy:   "Akshat Shrawat",
		CreatedOn:   "11/26/2024, 10:13:16 PM",
	},
	{
		ID:          2,
		ServiceName: "Washroom",
		Building:    "Digi",
		Floor:       "1st Floor",
		Unit:        "Copilot, Connect",
		CreatedBy:   "Anurag Sharma",
		CreatedOn:   "10/16/2024, 8:32:29 PM",
	},
	{
		ID:          3,
		ServiceName: "Cabin -Anurag",
		Building:    "Digi",
		Floor:       "1st Floor",
		Unit:        "Connect",
		CreatedBy:   "Anurag Sharma",
		CreatedOn:   "10/15/2024, 8:35:00 PM",
	},
}

var seedChecklists = []entities.Checklist{
	{
		ID:            1,
		Name:          "Mob Checklist Testing",
		StartDate:     "2025-03-11",
		EndDate:       "2025-03-31",
		PriorityLevel: entities.PriorityLevelHigh,
		Frequency:     entities.FrequencyHourly,
		NoOfGroups:    2,
		Associations:  "Associate",
	},
	{
		ID:            2,
		Name:          "Testing dor dup",
		StartDate:     "2025-02-22",
		EndDate:       "2025-02-27",
		PriorityLevel: entities.PriorityLevelMedium,
		Frequency:     entities.FrequencyHalfYearly,
		NoOfGroups:    1,
		Associations:  "Associate",
	},
	{
		ID:            3,
		Name:          "Tes 1232322",
		StartDate:     "2025-02-22",
		EndDate:       "2025-02-27",
		PriorityLevel: entities.PriorityLevelUnset,
		Frequency:     entities.FrequencyDaily,
		NoOfGroups:    1,
		Associations:  "Associate",
	},
}

var seedTasks = []entities.Task{
	{
		ID:            1,
		ServiceName:   "Mopping",
		ChecklistName: "Mob Checklist Testing",
		StartDate:     "30 Mar 2025",
		Status:        entities.TaskStatusPending,
		AssignedTo:    "Vibe User",
	},
	{
		ID:            2,
		ServiceName:   "Mopping",
		ChecklistName: "Mob Checklist Testing",
		StartDate:     "30 Mar 2025",
		Status:        entities.TaskStatusPending,
		AssignedTo:    "Vibe User",
	},
	{
		ID:            3,
		ServiceName:   "Mopping",
		ChecklistName: "Mob Checklist Testing",
		StartDate:     "30 Mar 2025",
		Status:        entities.TaskStatusCompleted,
		AssignedTo:    "Vibe User",
	},
}
