package calendar

// yearCodes packs one lunar year per entry for 1800–2099. Layout, from
// the high bits down:
//
//	bits 17+  offset of Tết from 1 Jan of the same solar year
//	bit  16   leap month has 30 days
//	bits 15-4 ordinary months 1..12 have 30 days (bit 15 = month 1)
//	bits 3-0  index of the leap month (0 = no leap month)
//
// Regenerated from the astronomical tier at UTC+7 and verified day by
// day against it over the full span, so the two conversion strategies
// agree exactly where they overlap.
var yearCodes = [...]uint32{
	0x031aa94, 0x0566b50, 0x0422b60, 0x02cab62, 0x0529370, 0x03d48e7, // 1800-1805
	0x060c960, 0x04ae4a0, 0x034eca5, 0x058da90, 0x0445ad0, 0x03036d3, // 1806-1811
	0x0562ae0, 0x03e92e0, 0x028d2d2, 0x04ec950, 0x038d556, 0x05cb4a0, // 1812-1817
	0x046b690, 0x0325da4, 0x05855b0, 0x04225d0, 0x02d85b3, 0x05292b0, // 1818-1823
	0x03da8b7, 0x0606950, 0x04a74a0, 0x035b2a5, 0x05aab50, 0x04455b0, // 1824-1829
	0x0302b74, 0x0562570, 0x04052f9, 0x06452b0, 0x04e6950, 0x0386d56, // 1830-1835
	0x05e5aa0, 0x046ab50, 0x03346d4, 0x0584ae0, 0x042a570, 0x02d44d3, // 1836-1841
	0x050d260, 0x03bd8a7, 0x060b550, 0x04a56a0, 0x0349da5, 0x05a95d0, // 1842-1847
	0x0464ad0, 0x02ea9b4, 0x054a4d0, 0x03ed2b8, 0x064aa50, 0x04cb550, // 1848-1853
	0x0383757, 0x05e2da0, 0x04895b0, 0x0324b75, 0x0584970, 0x042a4b0, // 1854-1859
	0x02da4b3, 0x0506a50, 0x03a6d98, 0x0605b50, 0x04c2b60, 0x03592e5, // 1860-1865
	0x05a92f0, 0x0464970, 0x0306964, 0x052d4a0, 0x03cea6a, 0x062da90, // 1866-1871
	0x04e5ad0, 0x0392ad6, 0x05e26e0, 0x04892e0, 0x032cad5, 0x056c950, // 1872-1877
	0x040d4a0, 0x02bd4a3, 0x050b550, 0x03a5757, 0x06055b0, 0x04c25d0, // 1878-1883
	0x03695b5, 0x05a92b0, 0x044a950, 0x02eb954, 0x0546ca0, 0x03cb550, // 1884-1889
	0x0286b52, 0x04e4da0, 0x038a766, 0x05ca570, 0x04852b0, 0x0326aa5, // 1890-1895
	0x056e950, 0x0406aa0, 0x02abaa3, 0x050ab50, 0x03c4bd8, 0x0624ae0, // 1896-1901
	0x04ca560, 0x036d4d5, 0x05cd260, 0x044d930, 0x0315554, 0x05656a0, // 1902-1907
	0x04096d0, 0x02a55d2, 0x0504ad0, 0x03aa5b6, 0x060a4d0, 0x048d250, // 1908-1913
	0x033d255, 0x058b540, 0x042b6a0, 0x02d8da3, 0x05295b0, 0x03f4977, // 1914-1919
	0x0644970, 0x04ca4b0, 0x037b0b6, 0x05c6a50, 0x0466d40, 0x02fab54, // 1920-1925
	0x0562b60, 0x0409570, 0x02c52f2, 0x0504970, 0x03a6566, 0x05ed4a0, // 1926-1931
	0x048ea50, 0x0326e55, 0x0585ac0, 0x042ab60, 0x02f86d3, 0x05292e0, // 1932-1937
	0x03cc9d8, 0x062a950, 0x04cd4a0, 0x035d8a6, 0x05ab550, 0x04656a0, // 1938-1943
	0x031a5b4, 0x05625d0, 0x04092d0, 0x02b92b2, 0x050a950, 0x038b557, // 1944-1949
	0x05e6aa0, 0x048ad50, 0x0355355, 0x0584ba0, 0x042a5b0, 0x02f4573, // 1950-1955
	0x0545270, 0x03c6968, 0x060e950, 0x04c6aa0, 0x036aea6, 0x05a9b50, // 1956-1961
	0x0464b60, 0x030aae4, 0x056a4e0, 0x03ed260, 0x028f263, 0x04ed920, // 1962-1967
	0x038db47, 0x05cd6a0, 0x04896d0, 0x0344dd5, 0x05a4ad0, 0x042a4d0, // 1968-1973
	0x02cd4b4, 0x052b250, 0x03cd558, 0x060b540, 0x04ab5a0, 0x03755a6, // 1974-1979
	0x05c95b0, 0x04649b0, 0x030a974, 0x056a4b0, 0x040aa50, 0x029aa52, // 1980-1985
	0x04e6d20, 0x039ad47, 0x05eab60, 0x0489370, 0x0344af5, 0x05a4970, // 1986-1991
	0x04464b0, 0x02c74a3, 0x050ea50, 0x03d6a58, 0x06256a0, 0x04aaad0, // 1992-1997
	0x03696d5, 0x05c92e0, 0x046c960, 0x02ed954, 0x054d4a0, 0x03eda50, // 1998-2003
	0x02a7552, 0x04e56a0, 0x038a7a7, 0x05ea5d0, 0x04a92b0, 0x032aab5, // 2004-2009
	0x058a950, 0x042b4a0, 0x02cbaa4, 0x050ad50, 0x03c55d9, 0x0624ba0, // 2010-2015
	0x04ca5b0, 0x0375176, 0x05c5270, 0x0466930, 0x0307934, 0x0546aa0, // 2016-2021
	0x03ead50, 0x02a5b52, 0x0504b60, 0x038a6e6, 0x05ea4e0, 0x048d260, // 2022-2027
	0x032ea65, 0x056d520, 0x040daa0, 0x02d56a3, 0x05256d0, 0x03c4afb, // 2028-2033
	0x06249d0, 0x04ca4d0, 0x037d0b6, 0x05ab250, 0x044b520, 0x02edd25, // 2034-2039
	0x054b5a0, 0x03e55d0, 0x02a55b2, 0x05049b0, 0x03aa577, 0x05ea4b0, // 2040-2045
	0x048aa50, 0x033b255, 0x0586d20, 0x040ad60, 0x02d4b63, 0x0525370, // 2046-2051
	0x03e49e8, 0x060c970, 0x04c64b0, 0x03768a6, 0x05ada50, 0x0445aa0, // 2052-2057
	0x02fa6a4, 0x054aad0, 0x04052e0, 0x028d2e3, 0x04ec950, 0x038d557, // 2058-2063
	0x05ed4a0, 0x046d950, 0x0325d55, 0x05856a0, 0x042a6d0, 0x02c55d4, // 2064-2069
	0x05252b0, 0x03ca9b8, 0x062a950, 0x04ab490, 0x034b6a6, 0x05aad50, // 2070-2075
	0x04655a0, 0x02eaba4, 0x054a570, 0x04052b0, 0x02ab173, 0x04e6930, // 2076-2081
	0x0386b37, 0x05e6aa0, 0x048ad50, 0x0332ad5, 0x0582b60, 0x042a570, // 2082-2087
	0x02e52e4, 0x050d160, 0x03ae958, 0x060d520, 0x04ada90, 0x0355aa6, // 2088-2093
	0x05a56d0, 0x0462ae0, 0x030a9d4, 0x054a2d0, 0x03ed150, 0x028e952, // 2094-2099
}

// yearCodeFirst is the first solar year covered by yearCodes.
const yearCodeFirst = 1800
