package fixpoly

// degToRad maps an integer degree 0..360 to fixed-point radians. The
// hot per-vertex loop must stay free of extra arithmetic, so the
// conversion is a table lookup rather than a multiply. Entries are the
// truncated multiples of 1143.33 (pi/180 in 16.16) carried over from
// the reference tables; 0 and 360 round-trip exactly.
var degToRad = [361]Fixed{
	0, 1143, 2287, 3430, 4573, 5717, 6860, 8003, 9147, 10290,
	11433, 12577, 13720, 14863, 16007, 17150, 18293, 19437, 20580, 21723,
	22867, 24010, 25153, 26297, 27440, 28583, 29727, 30870, 32013, 33157,
	34300, 35443, 36587, 37730, 38873, 40017, 41160, 42303, 43447, 44590,
	45733, 46877, 48020, 49163, 50307, 51450, 52593, 53737, 54880, 56023,
	57167, 58310, 59453, 60597, 61740, 62883, 64027, 65170, 66313, 67457,
	68600, 69743, 70887, 72030, 73173, 74317, 75460, 76603, 77747, 78890,
	80033, 81177, 82320, 83463, 84607, 85750, 86893, 88037, 89180, 90323,
	91467, 92610, 93753, 94897, 96040, 97183, 98327, 99470, 100613, 101757,
	102900, 104043, 105187, 106330, 107473, 108617, 109760, 110903, 112047, 113190,
	114333, 115477, 116620, 117763, 118907, 120050, 121193, 122337, 123480, 124623,
	125767, 126910, 128053, 129197, 130340, 131483, 132627, 133770, 134913, 136057,
	137200, 138343, 139487, 140630, 141773, 142917, 144060, 145203, 146347, 147490,
	148633, 149777, 150920, 152063, 153207, 154350, 155493, 156637, 157780, 158923,
	160067, 161210, 162353, 163497, 164640, 165783, 166927, 168070, 169213, 170357,
	171500, 172643, 173787, 174930, 176073, 177217, 178360, 179503, 180647, 181790,
	182933, 184077, 185220, 186363, 187507, 188650, 189793, 190937, 192080, 193223,
	194367, 195510, 196653, 197797, 198940, 200083, 201227, 202370, 203513, 204657,
	205800, 206943, 208087, 209230, 210373, 211517, 212660, 213803, 214947, 216090,
	217233, 218377, 219520, 220663, 221807, 222950, 224093, 225237, 226380, 227523,
	228667, 229810, 230953, 232097, 233240, 234383, 235527, 236670, 237813, 238957,
	240100, 241243, 242387, 243530, 244673, 245817, 246960, 248103, 249247, 250390,
	251533, 252677, 253820, 254963, 256107, 257250, 258393, 259537, 260680, 261823,
	262967, 264110, 265253, 266397, 267540, 268683, 269827, 270970, 272113, 273257,
	274400, 275543, 276687, 277830, 278973, 280117, 281260, 282403, 283547, 284690,
	285833, 286977, 288120, 289263, 290407, 291550, 292693, 293837, 294980, 296123,
	297267, 298410, 299553, 300697, 301840, 302983, 304127, 305270, 306413, 307557,
	308700, 309843, 310987, 312130, 313273, 314417, 315560, 316703, 317847, 318990,
	320133, 321277, 322420, 323563, 324707, 325850, 326993, 328137, 329280, 330423,
	331567, 332710, 333853, 334997, 336140, 337283, 338427, 339570, 340713, 341857,
	343000, 344143, 345287, 346430, 347573, 348717, 349860, 351003, 352147, 353290,
	354433, 355577, 356720, 357863, 359007, 360150, 361293, 362437, 363580, 364723,
	365867, 367010, 368153, 369297, 370440, 371583, 372727, 373870, 375013, 376157,
	377300, 378443, 379587, 380730, 381873, 383017, 384160, 385303, 386447, 387590,
	388733, 389877, 391020, 392163, 393307, 394450, 395593, 396737, 397880, 399023,
	400167, 401310, 402453, 403597, 404740, 405883, 407027, 408170, 409313, 410457,
	411600,
}

// Radians converts an angle in whole degrees to fixed-point radians,
// wrapping into [0, 360) first.
func Radians(deg int) Fixed {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return degToRad[deg]
}
