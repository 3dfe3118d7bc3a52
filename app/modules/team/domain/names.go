package teamdomain

// Countries are the national teams available for registration and demo seeding.
var Countries = []string{
	"Algeria", "Angola", "Benin", "Botswana", "Burkina Faso", "Burundi", "Cabo Verde", "Cameroon",
	"Central African Republic", "Chad", "Comoros", "Congo", "DR Congo", "Cote d'Ivoire", "Djibouti",
	"Egypt", "Equatorial Guinea", "Eritrea", "Eswatini", "Ethiopia", "Gabon", "Gambia", "Ghana",
	"Guinea", "Guinea-Bissau", "Kenya", "Lesotho", "Liberia", "Libya", "Madagascar", "Malawi", "Mali",
	"Mauritania", "Mauritius", "Morocco", "Mozambique", "Namibia", "Niger", "Nigeria", "Rwanda",
	"Sao Tome and Principe", "Senegal", "Seychelles", "Sierra Leone", "Somalia", "South Africa",
	"South Sudan", "Sudan", "Tanzania", "Togo", "Tunisia", "Uganda", "Zambia", "Zimbabwe",
}

var firstNames = []string{
	"John", "Ali", "Mohamed", "David", "Samuel", "Joseph", "Michael", "Pierre",
	"Kwame", "Carlos", "Ahmed", "Youssef", "Kofi", "Suleiman", "Ibrahim",
}

var lastNames = []string{
	"Mensah", "Kone", "Diallo", "Okoye", "Moyo", "Kamau", "Ndlovu",
	"Nguyen", "Osei", "Smith", "Johnson", "Brown", "Doe",
}
