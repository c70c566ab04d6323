package data

// shapeDefs — базовые статы форм. Значения умножаются на (level + 7).
var shapeDefs = []ShapeRecord{
	{Slug: "aquatic", Stats: statsOf(8, 4, 8, 6, 6, 4)},
	{Slug: "blob", Stats: statsOf(8, 4, 8, 4, 4, 4)},
	{Slug: "brute", Stats: statsOf(7, 5, 7, 8, 4, 5)},
	{Slug: "dragon", Stats: statsOf(7, 5, 6, 6, 6, 6)},
	{Slug: "flier", Stats: statsOf(5, 6, 4, 5, 6, 8)},
	{Slug: "grub", Stats: statsOf(7, 4, 7, 4, 6, 4)},
	{Slug: "humanoid", Stats: statsOf(4, 8, 4, 6, 6, 6)},
	{Slug: "hunter", Stats: statsOf(4, 6, 5, 8, 4, 7)},
	{Slug: "landrace", Stats: statsOf(8, 4, 6, 6, 6, 4)},
	{Slug: "leviathan", Stats: statsOf(8, 3, 9, 6, 6, 3)},
	{Slug: "polliwog", Stats: statsOf(4, 8, 5, 4, 6, 7)},
	{Slug: "serpent", Stats: statsOf(6, 6, 6, 5, 6, 5)},
	{Slug: "sprite", Stats: statsOf(4, 8, 4, 4, 8, 6)},
	{Slug: "varmint", Stats: statsOf(6, 6, 6, 6, 4, 6)},
}
