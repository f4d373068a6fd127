package opciones

// AreasConocidas son las áreas del conocimiento usadas por el Mineduc.
var AreasConocidas = []string{
	"Administración y Comercio",
	"Agropecuaria",
	"Arte y Arquitectura",
	"Ciencias Básicas",
	"Ciencias Sociales",
	"Derecho",
	"Educación",
	"Humanidades",
	"Salud",
	"Tecnología",
}

// InstitucionesConocidas cubre las instituciones con mayor matrícula.
var InstitucionesConocidas = []string{
	"DUOC UC",
	"INACAP",
	"Pontificia Universidad Católica de Chile",
	"Pontificia Universidad Católica de Valparaíso",
	"Universidad Andrés Bello",
	"Universidad Austral de Chile",
	"Universidad de Chile",
	"Universidad de Concepción",
	"Universidad de Santiago de Chile",
	"Universidad Técnica Federico Santa María",
}

// RegionesConocidas son las 16 regiones, de norte a sur.
var RegionesConocidas = []string{
	"Arica y Parinacota",
	"Tarapacá",
	"Antofagasta",
	"Atacama",
	"Coquimbo",
	"Valparaíso",
	"Metropolitana",
	"O'Higgins",
	"Maule",
	"Ñuble",
	"Biobío",
	"La Araucanía",
	"Los Ríos",
	"Los Lagos",
	"Aysén",
	"Magallanes",
}
